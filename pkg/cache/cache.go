// Package cache stores rendered chart documents keyed by their inputs.
//
// Four backends implement [Cache]: [NullCache] disables caching,
// [FileCache] keeps entries under the user cache directory for CLI runs,
// [MemoryCache] serves a single API instance and [RedisCache] shares entries
// between API replicas. Keys are produced by a
// [Keyer] so every backend sees the same layout.
package cache

import (
	"context"
	"time"
)

// Default time-to-live per entry kind.
const (
	// TTLDocument applies to serialized option documents. Documents are pure
	// functions of their inputs, so they only expire to bound disk usage.
	TTLDocument = 7 * 24 * time.Hour

	// TTLArtifact applies to rendered outputs such as HTML pages.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss with hit=false and a nil error. Implementations must be
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
