package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// renderKeyPrefix namespaces cached public renderings by path.
const renderKeyPrefix = "render:"

// DefaultRenderTTL bounds how stale a cached rendering can get when an
// explicit invalidation is missed. Both policies - TTL expiry and explicit
// invalidation - operate on the same key; either alone yields eventual
// consistency.
const DefaultRenderTTL = 60 * time.Second

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetRender retrieves the cached public rendering for a path.
// Returns ErrCacheMiss if absent, expired, or invalidated.
func (c *Cache) GetRender(ctx context.Context, path string) ([]byte, error) {
	payload, err := c.client.Get(ctx, renderKeyPrefix+path).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return payload, nil
}

// SetRender stores a freshly computed rendering with the staleness bound.
// A non-positive TTL falls back to the default; the time-based policy must
// never be disabled, even with explicit invalidation in place.
func (c *Cache) SetRender(ctx context.Context, path string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultRenderTTL
	}

	if err := c.client.Set(ctx, renderKeyPrefix+path, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache render: %w", err)
	}

	return nil
}

// InvalidateRender marks the cached rendering for a path as stale so the
// next public request recomputes it. Deleting an absent key is a no-op,
// so invalidation is safe to call unconditionally after a commit.
func (c *Cache) InvalidateRender(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, renderKeyPrefix+path).Err(); err != nil {
		return fmt.Errorf("failed to invalidate render: %w", err)
	}

	return nil
}
