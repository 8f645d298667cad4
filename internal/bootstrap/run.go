package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/curiogoods/catalog-api/config"
)

// RunConfig contains dependencies for RunWithShutdown.
type RunConfig struct {
	Config   config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// RunWithShutdown serves HTTP until SIGINT or SIGTERM, then shuts the server
// down gracefully and releases the service container.
func RunWithShutdown(ctx context.Context, cfg RunConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := NewHTTPServer(HTTPServerConfig{
		Config:   cfg.Config.HTTP,
		Services: cfg.Services,
		Logger:   logger,
	})

	group, groupCtx := errgroup.WithContext(signalCtx)
	group.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		// Shutdown gets its own context: the group context is already done.
		return ShutdownHTTPServer(ShutdownConfig{
			Context: context.WithoutCancel(groupCtx),
			Server:  server,
			Config:  cfg.Config.HTTP,
			Logger:  logger,
		})
	})

	err := group.Wait()
	if cerr := cfg.Services.Close(); cerr != nil {
		logger.Error("close services failed", "error", cerr)
	}
	return err
}
