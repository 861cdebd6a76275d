// Package highlights maintains the home page highlights view: the newest
// profiles of the directory, kept in the cache under cache.HighlightsSlot.
package highlights

import (
	"context"
	"encoding/json"
	"fmt"
	"realtors/internal/config"
	"realtors/pkg/cache"
	"realtors/pkg/domain"
	"realtors/pkg/logger"
	"realtors/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("realtors/internal/highlights") //nolint: gochecknoglobals

// Options configure the size and lifetime of the view, and the refresh job.
type Options struct {
	// Size is the number of newest profiles in the view.
	Size uint
	// TTL bounds how long a stored view may be served.
	TTL time.Duration
	// RefreshCoalescePeriod deduplicates refresh jobs enqueued close together.
	RefreshCoalescePeriod time.Duration
	// MaxAttempts caps how often a refresh job is retried.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	size := cfg.Highlights.Size
	if size < 1 {
		size = 1
	}

	return Options{
		Size:                  uint(size),
		TTL:                   cfg.Highlights.TTL,
		RefreshCoalescePeriod: cfg.Highlights.RefreshCoalescePeriod,
		MaxAttempts:           cfg.Highlights.MaxAttempts,
	}
}

type highlights struct {
	options Options
	storage storage.Storage
	cache   cache.Cache
	now     func() time.Time
}

// Get is a cache-aside read. Cache failures degrade to computing the view from
// storage; they never fail the request.
func (h highlights) Get(ctx context.Context) (*domain.Highlights, error) {
	ctx, span := tracer.Start(ctx, "highlights.Get")
	defer span.End()

	raw, ok, err := h.cache.Get(ctx, cache.HighlightsSlot)
	if err != nil {
		logger.Warn(ctx, "could not read highlights from cache", zap.Error(err))
	}
	if ok {
		var view domain.Highlights
		if err := json.Unmarshal(raw, &view); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))

			return &view, nil
		}
		logger.Warn(ctx, "discarding undecodable highlights entry", zap.Error(err))
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	return h.rebuild(ctx, span)
}

// Refresh recomputes and stores the view.
func (h highlights) Refresh(ctx context.Context) (*domain.Highlights, error) {
	ctx, span := tracer.Start(ctx, "highlights.Refresh")
	defer span.End()

	return h.rebuild(ctx, span)
}

func (h highlights) rebuild(ctx context.Context, span trace.Span) (*domain.Highlights, error) {
	rows, err := h.storage.ListRealtors(ctx, storage.RealtorQuery{
		SortBy: storage.SortCreatedAt,
		Desc:   true,
		Limit:  h.options.Size,
	})
	if err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not list newest realtors: %w", err)
	}

	view := &domain.Highlights{
		Realtors:    rows,
		GeneratedAt: h.now().UTC(),
	}
	span.SetAttributes(attribute.Int("highlights.size", len(rows)))

	raw, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("could not encode highlights: %w", err)
	}
	if err := h.cache.Put(ctx, cache.HighlightsSlot, raw, h.options.TTL); err != nil {
		logger.Warn(ctx, "could not store highlights in cache", zap.Error(err))
	}

	return view, nil
}

// New creates a Highlights service reading profiles from storage and keeping
// the computed view in c.
func New(storage storage.Storage, c cache.Cache, options Options) Highlights {
	return &highlights{
		options: options,
		storage: storage,
		cache:   c,
		now:     time.Now,
	}
}
