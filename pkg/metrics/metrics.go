package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "realtors"

// Metrics groups the application level collectors. A single instance is
// created at startup and handed to the services that record into it.
type Metrics struct {
	// ProfilesCreated counts committed profile creations.
	ProfilesCreated prometheus.Counter
	// ProfilesUpdated counts committed profile updates.
	ProfilesUpdated prometheus.Counter
	// ProfilesDeleted counts committed profile deletions.
	ProfilesDeleted prometheus.Counter
	// ProfileConflicts counts creations rejected because the caller already owns a profile.
	ProfileConflicts prometheus.Counter
	// ListingDuration observes how long a directory page takes to assemble.
	ListingDuration prometheus.Histogram
	// CacheInvalidations counts invalidations per slot.
	CacheInvalidations *prometheus.CounterVec
	// CacheLookups counts reads per slot and result (hit, miss, error).
	CacheLookups *prometheus.CounterVec
}

// New registers the collectors with reg. Tests should pass a fresh
// prometheus.NewRegistry() so repeated construction does not panic.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ProfilesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_created_total",
			Help:      "Number of realtor profiles created",
		}),
		ProfilesUpdated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_updated_total",
			Help:      "Number of realtor profiles updated",
		}),
		ProfilesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_deleted_total",
			Help:      "Number of realtor profiles deleted",
		}),
		ProfileConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_conflicts_total",
			Help:      "Number of profile creations rejected because the user already has a profile",
		}),
		ListingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "listing_duration_seconds",
			Help:      "Latency of assembling one directory page",
			Buckets:   DefaultBuckets,
		}),
		CacheInvalidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidations_total",
			Help:      "Number of cache slot invalidations",
		}, []string{"slot"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Number of cache reads by result",
		}, []string{"slot", "result"}),
	}
}
