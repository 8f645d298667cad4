package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/curiogoods/catalog-api/config"
	"github.com/curiogoods/catalog-api/internal/adapters/devauth"
	"github.com/curiogoods/catalog-api/internal/adapters/gemini"
	"github.com/curiogoods/catalog-api/internal/adapters/oidc"
	"github.com/curiogoods/catalog-api/internal/adapters/storefront"
	"github.com/curiogoods/catalog-api/internal/data"
	"github.com/curiogoods/catalog-api/internal/domain/branding"
	httpx "github.com/curiogoods/catalog-api/internal/http"
	"github.com/curiogoods/catalog-api/internal/ports"
	"github.com/curiogoods/catalog-api/internal/service"
)

// ServiceContainer holds the wired services and the health checks for their
// external dependencies.
type ServiceContainer struct {
	Branding  *service.BrandingService
	Admission *service.AdmissionService
	Health    map[string]httpx.HealthChecker

	redisClient *redis.Client
}

// BuildServices constructs the full service graph from configuration.
// Construction performs no network calls except OIDC discovery (when
// AUTH_MODE=oauth); readiness of the platform and cache is observed through
// the health endpoint instead.
func BuildServices(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*ServiceContainer, error) {
	container, err := BuildBrandingServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	resolver, err := buildResolver(ctx, cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("build identity resolver: %w", err)
	}

	container.Admission, err = service.NewAdmissionService(service.AdmissionOptions{
		Resolver:  resolver,
		Allowlist: cfg.Auth.Allowlist,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build admission service: %w", err)
	}

	return container, nil
}

// BuildBrandingServices constructs the pipeline side of the graph without the
// admission gate. The admin CLI uses this: it runs on the server side of the
// gate and authenticates to the platform directly.
func BuildBrandingServices(cfg config.AppConfig, logger *slog.Logger) (*ServiceContainer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	platform, err := storefront.NewClient(storefront.Options{
		BaseURL:       cfg.Platform.BaseURL,
		AccessToken:   cfg.Platform.AccessToken,
		CopyNamespace: cfg.Platform.CopyNamespace,
		CopyKey:       cfg.Platform.CopyKey,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build storefront client: %w", err)
	}

	health := map[string]httpx.HealthChecker{"platform": platform}

	container := &ServiceContainer{Health: health}

	// The platform metafield is the authoritative copy cache; Redis is an
	// optional local layer in front of it.
	var cache ports.CopyCache = platform
	if cfg.Cache.Enabled {
		container.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		redisCache := data.NewRedisCopyCache(data.RedisCopyCacheOptions{
			Client: container.redisClient,
			Next:   platform,
			TTL:    cfg.Cache.CopyTTL,
			Logger: logger,
		})
		cache = redisCache
		health["cache"] = redisCache
	}

	generator, err := gemini.NewClient(gemini.Options{
		APIKey:  cfg.Generation.APIKey,
		Model:   cfg.Generation.Model,
		BaseURL: cfg.Generation.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("build generation client: %w", err)
	}

	enricher := service.NewCopyGenerator(service.CopyGeneratorOptions{
		Cache:     cache,
		Generator: generator,
		Logger:    logger,
	})

	pipeline := branding.NewPipeline(branding.PipelineOptions{
		Evaluator: branding.DefaultRules(),
		Enricher:  enricher,
		Logger:    logger,
	})

	container.Branding = service.NewBrandingService(service.BrandingServiceOptions{
		Source:   platform,
		Pipeline: pipeline,
		Logger:   logger,
	})

	return container, nil
}

// buildResolver selects the identity resolver for the configured auth mode.
func buildResolver(ctx context.Context, cfg config.AuthConfig) (ports.IdentityResolver, error) {
	switch cfg.Mode {
	case config.AuthModeDev:
		return devauth.NewResolver(devauth.Config{
			Token:   cfg.DevAuth.Token,
			Subject: cfg.DevAuth.Subject,
			Email:   cfg.DevAuth.Email,
			Name:    cfg.DevAuth.Name,
		})
	default:
		return oidc.NewResolver(ctx, oidc.ResolverConfig{
			ClientID:     cfg.OAuth.ClientID,
			DiscoveryURL: cfg.OAuth.DiscoveryURL,
		})
	}
}

// Close releases resources held by the container.
func (c *ServiceContainer) Close() error {
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}
