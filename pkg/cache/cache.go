// Package cache provides the response cache consulted before every GitHub
// API call.
//
// # Overview
//
// A [Cache] stores opaque byte payloads (JSON-encoded API data) under
// namespaced string keys with a time-to-live:
//
//   - [MemoryCache]: process-local map with lazy eviction on lookup
//   - [NullCache]: no-op implementation for when caching is disabled
//
// The cache is an explicitly constructed instance handed to the consumers
// that need it, so tests can run with isolated instances and a fake clock:
//
//	c := cache.NewMemoryCache(5*time.Minute, cache.WithClock(clock.Now))
//	svc := profile.NewService(client, c, cache.NewDefaultKeyer(), logger)
//
// # Keys
//
// Keys are produced by a [Keyer] and are namespaced by operation and
// argument ("user-octocat", "search-octo"), so different operations can
// never collide. [ScopedKeyer] adds a prefix for credential isolation.
//
// # Lifetime
//
// Entries are never persisted and there is no size bound or background
// sweep. An expired entry is removed the first time it is looked up.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the lifetime of a cached API response.
const DefaultTTL = 5 * time.Minute

// Cache stores byte payloads under string keys.
//
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the payload for key. The bool is false when the key is
	// absent or its entry has expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 selects the cache default.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
