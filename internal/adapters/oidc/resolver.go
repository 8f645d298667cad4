package oidc

// Package oidc resolves bearer credentials against an OIDC identity provider.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/curiogoods/catalog-api/internal/domain/auth"
	apperrors "github.com/curiogoods/catalog-api/internal/errors"
	"github.com/curiogoods/catalog-api/internal/ports"
)

// ResolverConfig holds configuration for the OIDC identity resolver.
type ResolverConfig struct {
	ClientID     string
	DiscoveryURL string
	HTTPClient   *http.Client // Optional, defaults to a 30s-timeout client
}

// Resolver implements ports.IdentityResolver by verifying bearer ID tokens
// against the IdP's published keys (single discovery fetch at construction).
type Resolver struct {
	verifier *gooidc.IDTokenVerifier
}

// NewResolver creates a new OIDC identity resolver.
func NewResolver(ctx context.Context, config ResolverConfig) (*Resolver, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(config.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	provider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}

	return &Resolver{
		verifier: provider.Verifier(&gooidc.Config{ClientID: config.ClientID}),
	}, nil
}

var _ ports.IdentityResolver = (*Resolver)(nil)

// ResolveIdentity verifies the bearer token and maps its claims to an Identity.
func (r *Resolver) ResolveIdentity(ctx context.Context, credential string) (domainauth.Identity, error) {
	if strings.TrimSpace(credential) == "" {
		return domainauth.Identity{}, apperrors.Unauthenticated("missing bearer credential")
	}

	token, err := r.verifier.Verify(ctx, credential)
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthenticated, "verify bearer token")
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := token.Claims(&claims); err != nil {
		return domainauth.Identity{}, fmt.Errorf("parse token claims: %w", err)
	}
	if claims.Email == "" {
		return domainauth.Identity{}, apperrors.Unauthenticated("token carries no email claim")
	}

	return domainauth.Identity{
		Subject: token.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}
