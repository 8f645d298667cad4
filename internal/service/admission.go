package service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/net/publicsuffix"

	domainauth "github.com/curiogoods/catalog-api/internal/domain/auth"
	apperrors "github.com/curiogoods/catalog-api/internal/errors"
	"github.com/curiogoods/catalog-api/internal/ports"
)

// AdmissionOptions groups dependencies for AdmissionService.
type AdmissionOptions struct {
	Resolver ports.IdentityResolver // Required: bearer credential resolution
	// Allowlist entries are either full addresses ("ops@curiogoods.com") or
	// whole domains ("@curiogoods.com"). Matching is case-insensitive.
	Allowlist []string
	Logger    *slog.Logger // Optional: structured logger
}

// AdmissionService guards entry to the branding pipeline: a bearer credential
// must resolve to an identity, and that identity's normalized address must be
// on the configured allow-list. The two failures are distinct so callers can
// tell "log in" apart from "not permitted".
type AdmissionService struct {
	resolver ports.IdentityResolver
	emails   map[string]struct{}
	domains  map[string]struct{}
	logger   *slog.Logger
}

// NewAdmissionService constructs a new AdmissionService, normalizing and
// validating the allow-list up front so a bad entry fails at wiring time.
func NewAdmissionService(opts AdmissionOptions) (*AdmissionService, error) {
	if opts.Resolver == nil {
		panic("IdentityResolver is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &AdmissionService{
		resolver: opts.Resolver,
		emails:   make(map[string]struct{}),
		domains:  make(map[string]struct{}),
		logger:   logger,
	}

	for _, entry := range opts.Allowlist {
		normalized := strings.ToLower(strings.TrimSpace(entry))
		if normalized == "" {
			continue
		}

		if domain, ok := strings.CutPrefix(normalized, "@"); ok {
			// Refuse entries that would admit an entire public suffix,
			// e.g. "@com" or "@co.uk".
			if suffix, _ := publicsuffix.PublicSuffix(domain); suffix == domain {
				return nil, apperrors.Validationf(
					"allow-list entry %q is a bare public suffix", entry)
			}
			s.domains[domain] = struct{}{}
			continue
		}

		if !strings.Contains(normalized, "@") {
			return nil, apperrors.Validationf(
				"allow-list entry %q is neither an address nor an @domain", entry)
		}
		s.emails[normalized] = struct{}{}
	}

	return s, nil
}

// Authorize resolves the bearer credential and checks the identity against
// the allow-list. Returns an Unauthenticated error when the credential does
// not resolve, and a Forbidden error when the identity is not permitted.
func (s *AdmissionService) Authorize(ctx context.Context, credential string) (domainauth.Identity, error) {
	if len(s.emails) == 0 && len(s.domains) == 0 {
		return domainauth.Identity{}, apperrors.Internal("admission allow-list is not configured")
	}

	identity, err := s.resolver.ResolveIdentity(ctx, credential)
	if err != nil {
		if apperrors.IsUnauthenticated(err) {
			return domainauth.Identity{}, err
		}
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthenticated, "resolve identity")
	}

	email := identity.NormalizedEmail()
	if !s.permitted(email) {
		s.logger.InfoContext(ctx, "admission denied", "email", email)
		return domainauth.Identity{}, apperrors.Forbiddenf("%s is not permitted to run the branding pipeline", email)
	}

	return identity, nil
}

func (s *AdmissionService) permitted(email string) bool {
	if email == "" {
		return false
	}
	if _, ok := s.emails[email]; ok {
		return true
	}
	if _, domain, found := strings.Cut(email, "@"); found {
		if _, ok := s.domains[domain]; ok {
			return true
		}
	}
	return false
}
