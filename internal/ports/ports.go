package ports

// Package ports defines interfaces (hexagonal ports) for the external
// collaborators of the branding pipeline. Implementations live in
// internal/adapters and internal/data; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/curiogoods/catalog-api/internal/domain/auth"
	"github.com/curiogoods/catalog-api/internal/domain/model"
)

// ItemSource lists catalog items that are candidates for branding enrichment.
type ItemSource interface {
	// FetchItemsNeedingEnrichment returns up to limit items. Ordering is
	// source-defined and treated as stable for one call.
	FetchItemsNeedingEnrichment(ctx context.Context, limit int) ([]model.CatalogItem, error)
}

// CopyCache reads and writes the cached promotional copy attached to an item
// record. A present, non-empty value is authoritative and suppresses generation.
type CopyCache interface {
	// ReadCachedCopy returns the cached copy for the item, or "" when absent.
	ReadCachedCopy(ctx context.Context, itemID string) (string, error)

	// WriteCachedCopy persists freshly generated copy. Best-effort: callers
	// log failures but do not treat them as generation failures.
	WriteCachedCopy(ctx context.Context, itemID, text string) error
}

// TextGenerator produces promotional copy from a prompt. Single-shot, no
// client-side retry; calls may take unbounded time, so callers bound them.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IdentityResolver resolves a bearer credential to an authenticated identity.
type IdentityResolver interface {
	// ResolveIdentity verifies the credential and returns the identity,
	// or an error when the credential is missing, malformed, or expired.
	ResolveIdentity(ctx context.Context, credential string) (domainauth.Identity, error)
}
