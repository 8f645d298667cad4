package config

import "time"

// CacheConfig contains local copy cache configuration (Redis-based).
type CacheConfig struct {
	// Enabled turns the local Redis layer on. When false, cached copy is
	// read from and written to the platform field only.
	Enabled bool `env:"CACHE_ENABLED" envDefault:"false"`

	// Redis connection settings for cache.
	RedisAddr     string `env:"CACHE_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"CACHE_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"CACHE_REDIS_DB"       envDefault:"0"`

	// CopyTTL is the TTL for locally cached copy.
	CopyTTL time.Duration `env:"CACHE_COPY_TTL" envDefault:"6h"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.CopyTTL < 0 {
		c.CopyTTL = 0
	}
}
