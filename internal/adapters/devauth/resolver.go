package devauth

// Package devauth provides a config-driven identity resolver for local
// development. It accepts a single static credential and returns the
// configured identity, skipping any IdP round trip.

import (
	"context"
	"crypto/subtle"
	"errors"

	domainauth "github.com/curiogoods/catalog-api/internal/domain/auth"
	apperrors "github.com/curiogoods/catalog-api/internal/errors"
	"github.com/curiogoods/catalog-api/internal/ports"
)

// Config controls the dev resolver behavior.
type Config struct {
	Token   string
	Subject string
	Email   string
	Name    string
}

// Resolver implements ports.IdentityResolver for local development.
type Resolver struct {
	token    string
	identity domainauth.Identity
}

// NewResolver constructs a dev identity resolver from Config.
func NewResolver(cfg Config) (*Resolver, error) {
	if cfg.Token == "" {
		return nil, errors.New("dev auth: Token is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}

	subject := cfg.Subject
	if subject == "" {
		subject = "dev-user"
	}

	return &Resolver{
		token: cfg.Token,
		identity: domainauth.Identity{
			Subject: subject,
			Email:   cfg.Email,
			Name:    cfg.Name,
		},
	}, nil
}

var _ ports.IdentityResolver = (*Resolver)(nil)

// ResolveIdentity returns the configured identity when the credential matches
// the configured static token.
func (r *Resolver) ResolveIdentity(_ context.Context, credential string) (domainauth.Identity, error) {
	if credential == "" {
		return domainauth.Identity{}, apperrors.Unauthenticated("missing bearer credential")
	}
	if subtle.ConstantTimeCompare([]byte(credential), []byte(r.token)) != 1 {
		return domainauth.Identity{}, apperrors.Unauthenticated("unknown credential")
	}
	return r.identity, nil
}
