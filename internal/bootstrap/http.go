package bootstrap

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/curiogoods/catalog-api/config"
	httpx "github.com/curiogoods/catalog-api/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   config.HTTPConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// NewHTTPServer builds the HTTP server. The caller starts it.
func NewHTTPServer(cfg HTTPServerConfig) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler := httpx.NewRouter(httpx.RouterServices{
		Branding:  cfg.Services.Branding,
		Admission: cfg.Services.Admission,
		Health:    cfg.Services.Health,
		Logger:    logger,
	})

	addr := cfg.Config.Addr
	if addr == "" {
		addr = ":8080"
	}

	// No WriteTimeout: a run streams progress for as long as the batch takes,
	// and a fixed write deadline would cut long streams off mid-run.
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Config.ReadHeaderTimeout,
	}
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Config  config.HTTPConfig
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server, giving in-flight
// runs the configured window to reach their terminal event.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(cfg.Context, cfg.Config.ShutdownTimeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}

	return nil
}
