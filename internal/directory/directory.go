// Package directory serves the public, paginated listing of realtor profiles.
package directory

import (
	"context"
	"fmt"
	"realtors/internal/config"
	"realtors/pkg/cache"
	"realtors/pkg/domain"
	"realtors/pkg/metrics"
	"realtors/pkg/serrors"
	"realtors/pkg/storage"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

const scope = "realtors/internal/directory"

var tracer = otel.Tracer(scope) //nolint: gochecknoglobals

// Options configure the listing.
type Options struct {
	// InvalidateOnRead drops the highlights view on every List call.
	InvalidateOnRead bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		InvalidateOnRead: cfg.Directory.InvalidateOnRead,
	}
}

type listing struct {
	options Options
	storage storage.Storage
	cache   cache.Cache
	metrics *metrics.Metrics
	reads   metric.Int64Counter
}

// List assembles one directory page. The page window, the total count and the
// caller's ownership lookup are independent reads and run concurrently.
func (l listing) List(ctx context.Context,
	caller *domain.Identity,
	sortBy, order string,
	page int) (*domain.RealtorPage, error) {
	ctx, span := tracer.Start(ctx, "directory.List")
	defer span.End()
	start := time.Now()
	defer func() { l.metrics.ListingDuration.Observe(time.Since(start).Seconds()) }()

	field, effectiveOrder, desc := ResolveSort(sortBy, order)
	page = ClampPage(page)
	span.SetAttributes(
		attribute.String("directory.sort_by", sortNames[field]),
		attribute.String("directory.order", effectiveOrder),
		attribute.Int("directory.page", page),
	)
	l.reads.Add(ctx, 1, metric.WithAttributes(attribute.String("sort_by", sortNames[field])))

	res := &domain.RealtorPage{
		Page:     page,
		PageSize: PageSize,
		SortBy:   sortNames[field],
		Order:    effectiveOrder,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := l.storage.ListRealtors(gCtx, storage.RealtorQuery{
			SortBy: field,
			Desc:   desc,
			Limit:  PageSize,
			Offset: uint(Offset(page)), //nolint: gosec
		})
		if err != nil {
			return fmt.Errorf("could not list realtors: %w", err)
		}
		res.Items = items

		return nil
	})
	g.Go(func() error {
		total, err := l.storage.CountRealtors(gCtx)
		if err != nil {
			return fmt.Errorf("could not count realtors: %w", err)
		}
		res.Total = total
		res.LastPage = LastPage(total)

		return nil
	})
	if caller != nil && !caller.IsZero() {
		g.Go(func() error {
			own, err := l.storage.RealtorByUserID(gCtx, caller.ID)
			if err != nil {
				return fmt.Errorf("could not look up caller profile: %w", err)
			}
			res.CallerHasProfile = own != nil

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)

		return nil, err //nolint: wrapcheck
	}

	if l.options.InvalidateOnRead {
		if err := l.cache.Invalidate(ctx, cache.HighlightsSlot); err != nil {
			span.RecordError(err)

			return nil, fmt.Errorf("could not invalidate highlights: %w", err)
		}
	}

	return res, nil
}

func (l listing) Show(ctx context.Context, id domain.RealtorID) (*domain.RealtorView, error) {
	ctx, span := tracer.Start(ctx, "directory.Show")
	defer span.End()

	res, err := l.storage.RealtorViewByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get realtor: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "realtor not found")
	}

	return res, nil
}

// New creates a Listing over storage. The read counter is registered on the
// global otel meter provider.
func New(storage storage.Storage, c cache.Cache, m *metrics.Metrics, options Options) (Listing, error) {
	reads, err := otel.Meter(scope).Int64Counter("directory.listing.reads",
		metric.WithDescription("Directory pages served, by effective sort field"))
	if err != nil {
		return nil, fmt.Errorf("could not create listing counter: %w", err)
	}

	return &listing{
		options: options,
		storage: storage,
		cache:   c,
		metrics: m,
		reads:   reads,
	}, nil
}
