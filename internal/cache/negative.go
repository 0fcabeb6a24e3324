package cache

import (
	"context"
	"time"
)

// NegativeCacheEntry stores a negative lookup result (resource not found) with
// a short TTL, avoiding a repeat Postgres round-trip for a roster ID that
// doesn't exist.
type NegativeCacheEntry struct {
	Message  string
	CachedAt time.Time
}

// CacheNegativeResponse stores a negative lookup result with the configured
// negative TTL.
func (c *Client) CacheNegativeResponse(ctx context.Context, key string, message string) error {
	entry := NegativeCacheEntry{Message: message, CachedAt: time.Now()}
	return c.Set(ctx, key, entry, c.config.TTLs.Negative)
}

// GetNegativeCache retrieves a cached negative lookup result.
func (c *Client) GetNegativeCache(ctx context.Context, key string) (*NegativeCacheEntry, bool) {
	var entry NegativeCacheEntry
	if c.Get(ctx, key, &entry) {
		return &entry, true
	}
	return nil, false
}
