package respcache

import (
	"strings"
	"sync"
	"time"
)

// Store is the contract the handlers cache computed response payloads
// against. The bundled backend is in-memory; the interface keeps the route
// layer working against any backend, and callers treat every operation as
// best-effort — a cache fault degrades to recomputation, never to a failed
// request.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, payload any, ttl time.Duration)
	Invalidate(key string)
	Clear()
}

// Key builds a deterministic request signature from a route name and the
// normalized parameters that affect its output. Normalization trims
// surrounding whitespace and preserves case; cache-bypass flags must never
// be passed in. Routes sharing a parameter value still get distinct keys
// because the route name leads the signature.
func Key(route string, params ...string) string {
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, route)
	for _, p := range params {
		parts = append(parts, strings.TrimSpace(p))
	}
	return strings.Join(parts, ":")
}

type entry struct {
	payload   any
	createdAt time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.createdAt) > e.ttl
}

// MemoryCache is a concurrency-safe in-memory response cache. A TTL of zero
// means the entry is retained until explicitly evicted; expired entries are
// evicted lazily when read. Concurrent writers to the same key settle on
// last-writer-wins, and two racing misses may both recompute — the cache
// makes no single-flight promise of its own.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

var _ Store = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached payload for key, or ok=false on miss. Reading an
// entry past its TTL evicts it and reports a miss.
func (c *MemoryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		// Re-check under the write lock; a fresh Set may have replaced it.
		if cur, ok := c.entries[key]; ok && cur.expired(c.now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.payload, true
}

// Set stores payload under key, overwriting unconditionally. ttl <= 0 keeps
// the entry until it is explicitly invalidated.
func (c *MemoryCache) Set(key string, payload any, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{payload: payload, createdAt: c.now(), ttl: ttl}
	c.mu.Unlock()
}

// Invalidate removes the entry for key if present.
func (c *MemoryCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len reports the number of stored entries, including any not yet lazily
// evicted.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
