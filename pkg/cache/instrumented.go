package cache

import (
	"context"
	"realtors/pkg/metrics"
	"time"
)

// instrumented decorates a Cache with lookup and invalidation counters.
type instrumented struct {
	next    Cache
	metrics *metrics.Metrics
}

// Instrument wraps c so every Get and Invalidate is counted in m.
func Instrument(c Cache, m *metrics.Metrics) Cache {
	return &instrumented{next: c, metrics: m}
}

func (i *instrumented) Get(ctx context.Context, slot string) ([]byte, bool, error) {
	value, ok, err := i.next.Get(ctx, slot)
	switch {
	case err != nil:
		i.metrics.CacheLookups.WithLabelValues(slot, "error").Inc()
	case ok:
		i.metrics.CacheLookups.WithLabelValues(slot, "hit").Inc()
	default:
		i.metrics.CacheLookups.WithLabelValues(slot, "miss").Inc()
	}

	return value, ok, err //nolint: wrapcheck
}

func (i *instrumented) Put(ctx context.Context, slot string, value []byte, ttl time.Duration) error {
	return i.next.Put(ctx, slot, value, ttl) //nolint: wrapcheck
}

func (i *instrumented) Invalidate(ctx context.Context, slot string) error {
	if err := i.next.Invalidate(ctx, slot); err != nil {
		return err //nolint: wrapcheck
	}
	i.metrics.CacheInvalidations.WithLabelValues(slot).Inc()

	return nil
}
