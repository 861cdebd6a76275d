package highlights

import (
	"time"

	"github.com/riverqueue/river"
)

// RefreshJobArgs asks the worker to rebuild the highlights view. Every profile
// write enqueues one inside its own transaction, so the refresh only runs for
// committed changes.
type RefreshJobArgs struct {
	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod coalesces bursts of writes into a single refresh.
	uniqueJobPeriod time.Duration
	// runAt is the end of the coalescing window the job was requested in.
	runAt time.Time
}

// NewRefreshJob builds job args using the configured retry and coalescing settings.
func NewRefreshJob(opts Options) RefreshJobArgs {
	return NewRefreshJobAt(opts, time.Now())
}

// NewRefreshJobAt builds job args for a refresh requested at now. The job is
// scheduled at the end of the coalescing window containing now, so it never
// starts before the writes that were coalesced into it.
func NewRefreshJobAt(opts Options, now time.Time) RefreshJobArgs {
	args := RefreshJobArgs{
		maxAttempts:     opts.MaxAttempts,
		uniqueJobPeriod: opts.RefreshCoalescePeriod,
	}
	if opts.RefreshCoalescePeriod > 0 {
		args.runAt = now.UTC().Truncate(opts.RefreshCoalescePeriod).Add(opts.RefreshCoalescePeriod)
	}

	return args
}

// Kind returns the River job kind used to register and dispatch the refresh worker.
func (args RefreshJobArgs) Kind() string { return "RefreshHighlightsJob" }

// InsertOpts makes refreshes unique within the coalescing window. The args carry
// no payload, so any two refreshes requested in the same window are duplicates.
// River buckets uniqueness by the scheduled time, and a refresh that is already
// running belongs to an earlier window, so a write never coalesces into a
// refresh that may have read the data before it.
func (args RefreshJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		ScheduledAt: args.runAt,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: args.uniqueJobPeriod,
		},
	}
}
