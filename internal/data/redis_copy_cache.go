// Package data provides caching-layer implementations for the pipeline ports.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/curiogoods/catalog-api/internal/ports"
)

// RedisCopyCache is a read-through layer in front of the platform's cached
// copy field. The platform field stays authoritative and durable; Redis only
// trims repeat platform reads within its TTL. Every Redis failure degrades to
// the underlying cache rather than failing the read.
type RedisCopyCache struct {
	client redis.UniversalClient
	next   ports.CopyCache
	ttl    time.Duration
	logger *slog.Logger
}

// RedisCopyCacheOptions bundles dependencies for NewRedisCopyCache.
type RedisCopyCacheOptions struct {
	Client redis.UniversalClient
	Next   ports.CopyCache
	TTL    time.Duration
	Logger *slog.Logger
}

const defaultCopyTTL = 6 * time.Hour

// NewRedisCopyCache creates a new RedisCopyCache.
func NewRedisCopyCache(opts RedisCopyCacheOptions) *RedisCopyCache {
	ttl := opts.TTL
	if ttl == 0 {
		ttl = defaultCopyTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCopyCache{
		client: opts.Client,
		next:   opts.Next,
		ttl:    ttl,
		logger: logger,
	}
}

var _ ports.CopyCache = (*RedisCopyCache)(nil)

// ReadCachedCopy returns the locally cached copy when present, falling back
// to the platform field and priming the local cache on a platform hit.
func (c *RedisCopyCache) ReadCachedCopy(ctx context.Context, itemID string) (string, error) {
	if itemID == "" {
		return "", errors.New("item id cannot be empty")
	}

	key := copyKey(itemID)
	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil && cached != "":
		return cached, nil
	case err != nil && !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "redis copy read failed, falling back to platform",
			"item_id", itemID, "error", err)
	}

	text, err := c.next.ReadCachedCopy(ctx, itemID)
	if err != nil {
		return "", err
	}

	if text != "" {
		if serr := c.client.Set(ctx, key, text, c.ttl).Err(); serr != nil {
			c.logger.WarnContext(ctx, "redis copy prime failed", "item_id", itemID, "error", serr)
		}
	}
	return text, nil
}

// WriteCachedCopy writes through to the platform field and, on success,
// primes the local cache with the same value.
func (c *RedisCopyCache) WriteCachedCopy(ctx context.Context, itemID, text string) error {
	if itemID == "" {
		return errors.New("item id cannot be empty")
	}

	if err := c.next.WriteCachedCopy(ctx, itemID, text); err != nil {
		return fmt.Errorf("write platform copy: %w", err)
	}

	if err := c.client.Set(ctx, copyKey(itemID), text, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "redis copy prime after write failed", "item_id", itemID, "error", err)
	}
	return nil
}

// Health checks the Redis connection.
func (c *RedisCopyCache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func copyKey(itemID string) string {
	return "branding:copy:" + itemID
}
