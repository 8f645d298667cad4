package httpx

import (
	"log/slog"
	"net/http"

	"github.com/curiogoods/catalog-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Branding  *service.BrandingService
	Admission AdmissionAuthorizer
	// Health maps dependency names to reachability checks (optional).
	Health map[string]HealthChecker
	Logger *slog.Logger
}

// NewRouter creates and configures the HTTP router. Every pipeline route sits
// behind the admission gate; only health checks are open.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	brandingHandlers := &BrandingHandlers{Svc: services.Branding, Logger: logger}
	healthHandlers := &HealthHandlers{Checks: services.Health}

	admit := RequireAdmission(services.Admission)
	mux.Handle("POST /api/branding/run", admit(http.HandlerFunc(brandingHandlers.Run)))
	mux.Handle("GET /api/branding/preflight", admit(http.HandlerFunc(brandingHandlers.Preflight)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandlers.Health))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandlers.Health))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
