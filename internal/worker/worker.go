// Package worker runs the background job processor.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"realtors/internal/config"
	"realtors/internal/highlights"
	"realtors/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the job processor.
type Options struct {
	// MaxWorkers is the concurrency of the default queue.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
	}
}

// Deps are the services jobs are dispatched to.
type Deps struct {
	Highlights highlights.Highlights
}

// NewWorkers registers every job worker of the application.
func NewWorkers(deps Deps) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewHighlightsWorker(deps.Highlights))

	return workers
}

// Start creates a River client processing the default queue and starts it.
// The client stops when ctx is cancelled or Stop is called.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: NewWorkers(deps),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
