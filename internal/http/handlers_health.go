package httpx

import (
	"context"
	"net/http"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandlers serves readiness checks for the API and its dependencies.
type HealthHandlers struct {
	// Checks maps a dependency name to its checker. Nil checkers are skipped.
	Checks map[string]HealthChecker
}

// Health returns 200 when every registered dependency responds, 503 otherwise.
// The body lists per-dependency status either way.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	deps := make(map[string]string, len(h.Checks))

	for name, check := range h.Checks {
		if check == nil {
			continue
		}
		if err := check.Health(r.Context()); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	body := map[string]any{"status": "ok"}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(status)
		return
	}
	WriteJSON(w, status, body)
}
