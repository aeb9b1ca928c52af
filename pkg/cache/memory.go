package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultCleanupInterval is how often a [MemoryCache] drops expired entries.
const DefaultCleanupInterval = 10 * time.Minute

// MemoryCache keeps entries in process memory. It backs a single API
// instance that has no Redis to share.
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a memory cache. Entries set with a non-positive
// TTL never expire.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: gocache.New(gocache.NoExpiration, DefaultCleanupInterval)}
}

// Get returns a copy of the stored bytes.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := c.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v.([]byte)...), true, nil
}

// Set stores a copy of data.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.items.Set(key, append([]byte(nil), data...), ttl)
	return nil
}

// Delete removes a key. Missing keys are not an error.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.items.Delete(key)
	return nil
}

// Len returns the number of entries, including expired ones not yet
// cleaned up.
func (c *MemoryCache) Len() int { return c.items.ItemCount() }

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.items.Flush()
	return nil
}
