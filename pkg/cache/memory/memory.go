// Package memory provides an in-process cache.Cache. It is used by unit tests
// and by single-instance deployments that run without Redis.
package memory

import (
	"context"
	"realtors/pkg/cache"
	"sync"
	"time"
)

// Ensure Cache implements cache.Cache.
var _ cache.Cache = (*Cache)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Cache is a mutex guarded map with optional per-slot expiry.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *Cache) Get(_ context.Context, slot string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[slot]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		return nil, false, nil
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)

	return out, true, nil
}

func (c *Cache) Put(_ context.Context, slot string, value []byte, ttl time.Duration) error {
	e := entry{value: make([]byte, len(value))}
	copy(e.value, value)
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[slot] = e
	c.mu.Unlock()

	return nil
}

func (c *Cache) Invalidate(_ context.Context, slot string) error {
	c.mu.Lock()
	delete(c.entries, slot)
	c.mu.Unlock()

	return nil
}
