package cache

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/ghinsight/pkg/observability"
)

// entry is a stored payload. Entries are replaced, never mutated.
type entry struct {
	data     []byte
	storedAt time.Time
	ttl      time.Duration
}

// MemoryCache is an in-memory [Cache] with per-entry TTL.
//
// Expired entries are evicted lazily: Get removes a stale entry the first
// time it is asked for and reports a miss. Nothing else ever removes
// entries, so memory grows with the number of distinct keys for the
// lifetime of the process.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// MemoryOption configures a [MemoryCache].
type MemoryOption func(*MemoryCache)

// WithClock replaces the time source. Intended for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *MemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemoryCache creates an empty cache whose entries live for ttl.
// A ttl <= 0 selects [DefaultTTL].
func NewMemoryCache(ttl time.Duration, opts ...MemoryOption) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the default entry lifetime.
func (c *MemoryCache) TTL() time.Duration { return c.ttl }

// Get returns the payload for key if it is present and fresh.
// A stale entry is deleted before reporting the miss.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && c.now().Sub(e.storedAt) >= e.ttl {
		delete(c.entries, key)
		c.mu.Unlock()
		observability.Cache().OnCacheExpire(ctx, key)
		return nil, false, nil
	}
	c.mu.Unlock()

	if !ok {
		observability.Cache().OnCacheMiss(ctx, key)
		return nil, false, nil
	}
	observability.Cache().OnCacheHit(ctx, key)
	return e.data, true, nil
}

// Set stores a copy of data under key, replacing any previous entry.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	c.mu.Lock()
	c.entries[key] = entry{data: buf, storedAt: c.now(), ttl: ttl}
	c.mu.Unlock()

	observability.Cache().OnCacheSet(ctx, key, len(buf))
	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, including stale ones that
// have not been looked up yet.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
	return nil
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
