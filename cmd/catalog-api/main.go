package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/curiogoods/catalog-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting catalog branding API",
		"addr", cfg.HTTP.Addr,
		"auth_mode", cfg.Auth.Mode,
		"cache_enabled", cfg.Cache.Enabled)

	services, err := bootstrap.BuildServices(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return bootstrap.RunWithShutdown(ctx, bootstrap.RunConfig{
		Config:   cfg,
		Services: services,
		Logger:   logger,
	})
}
