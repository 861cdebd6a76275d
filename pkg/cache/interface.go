// Package cache defines the key/value store holding derived views such as the
// home page highlights. Values are opaque bytes stored under named slots.
//
//go:generate mockgen -package mockcache -source=interface.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"time"
)

// HighlightsSlot holds the aggregate home page highlights view. It is
// invalidated on every profile write and on every directory read.
const HighlightsSlot = "home_page_highlights"

// Cache stores opaque values under slots.
//
// After Invalidate returns nil, Get reports a miss for that slot until the
// next Put. Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value stored under slot. The bool is false on a miss.
	Get(ctx context.Context, slot string) ([]byte, bool, error)
	// Put stores value under slot. A zero ttl keeps the value until it is
	// invalidated or overwritten.
	Put(ctx context.Context, slot string, value []byte, ttl time.Duration) error
	// Invalidate removes slot. Invalidating a missing slot is not an error.
	Invalidate(ctx context.Context, slot string) error
}
