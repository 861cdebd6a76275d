package worker

import (
	"context"
	"fmt"
	"realtors/internal/highlights"
	"realtors/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// refreshTimeout bounds a single highlights rebuild.
const refreshTimeout = 30 * time.Second

// HighlightsWorker rebuilds the cached highlights view after profile writes.
// Jobs are enqueued in the same transaction as the write, so by the time one
// runs the change it was enqueued for is committed and visible.
type HighlightsWorker struct {
	river.WorkerDefaults[highlights.RefreshJobArgs]

	highlights highlights.Highlights
}

// NewHighlightsWorker constructs a HighlightsWorker using the provided service.
func NewHighlightsWorker(h highlights.Highlights) *HighlightsWorker {
	return &HighlightsWorker{highlights: h}
}

// Timeout overrides the client wide job timeout.
func (w *HighlightsWorker) Timeout(*river.Job[highlights.RefreshJobArgs]) time.Duration {
	return refreshTimeout
}

// Work recomputes the view. Failures are returned so River retries the job
// with backoff up to the configured attempts.
func (w *HighlightsWorker) Work(ctx context.Context, job *river.Job[highlights.RefreshJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("attempt", job.Attempt))

	view, err := w.highlights.Refresh(ctx)
	if err != nil {
		logger.Warn(ctx, "could not refresh highlights", zap.Error(err))

		return fmt.Errorf("could not refresh highlights: %w", err)
	}

	logger.Debug(ctx, "highlights refreshed", zap.Int("size", len(view.Realtors)))

	return nil
}
