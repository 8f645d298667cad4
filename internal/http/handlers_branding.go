package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/curiogoods/catalog-api/internal/domain/model"
	"github.com/curiogoods/catalog-api/internal/service"
)

// BrandingHandlers provides HTTP handlers for pipeline runs and preflight.
type BrandingHandlers struct {
	Svc    *service.BrandingService
	Logger *slog.Logger
}

// runRequestBody is the optional JSON body of a run request. Limit is a
// pointer so an explicit zero can be told apart from an omitted field: the
// former clamps up to the minimum, the latter selects the default.
type runRequestBody struct {
	Limit *int `json:"limit"`
}

// Run starts a pipeline run and streams its progress to the client as
// Server-Sent Events. The response is always 200: run failures are reported
// on the stream as the terminal error event, since by the time the batch can
// fail the headers have long been sent.
func (h *BrandingHandlers) Run(w http.ResponseWriter, r *http.Request) {
	req := model.RunRequest{Limit: parseIntQuery(r, "limit", model.DefaultRunLimit)}

	if r.Body != nil && r.ContentLength > 0 {
		var body runRequestBody
		if !DecodeJSON(w, r, &body) {
			return
		}
		if body.Limit != nil {
			req.Limit = *body.Limit
		}
	}

	stream, err := NewSSEStream(w, h.Logger)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "streaming_unsupported", Err: err})
		return
	}

	if identity, ok := IdentityFromContext(r.Context()); ok {
		h.Logger.InfoContext(r.Context(), "branding run requested",
			"operator", identity.NormalizedEmail(), "limit", req.Limit)
	}

	// Run failures surface as the stream's terminal error event.
	if _, err := h.Svc.Run(r.Context(), req, stream); err != nil {
		h.Logger.ErrorContext(r.Context(), "branding run failed", "error", err)
	}
}

// Preflight reports which items the next run would process, without
// generating or writing anything.
func (h *BrandingHandlers) Preflight(w http.ResponseWriter, r *http.Request) {
	req := model.RunRequest{Limit: parseIntQuery(r, "limit", model.DefaultRunLimit)}

	report, err := h.Svc.Preflight(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// parseIntQuery parses an integer query parameter, falling back to def when
// absent or malformed.
func parseIntQuery(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
