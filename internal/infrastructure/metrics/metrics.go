package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Asset lifecycle metrics
	AssetsCreated  prometheus.Counter
	AssetsRevalued prometheus.Counter
	AssetsScrapped prometheus.Counter

	// Schedule metrics
	ScheduleOperations *prometheus.CounterVec
	ScheduleDuration   *prometheus.HistogramVec
	LedgerRowsWritten  *prometheus.CounterVec
	ScheduleWarnings   prometheus.Counter

	// Policy metrics
	PolicyRateChanges prometheus.Counter
	PolicyFallbacks   prometheus.Counter
	RateChangeAssets  *prometheus.CounterVec

	// Period calendar metrics
	PeriodCacheLookups *prometheus.CounterVec

	// Event metrics
	EventsPublished *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics on reg.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Asset lifecycle metrics
		AssetsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "fixedassets_assets_created_total",
			Help: "Total number of assets created",
		}),
		AssetsRevalued: factory.NewCounter(prometheus.CounterOpts{
			Name: "fixedassets_assets_revalued_total",
			Help: "Total number of asset revaluations",
		}),
		AssetsScrapped: factory.NewCounter(prometheus.CounterOpts{
			Name: "fixedassets_assets_scrapped_total",
			Help: "Total number of assets scrapped",
		}),

		// Schedule metrics
		ScheduleOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixedassets_schedule_operations_total",
				Help: "Schedule operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		ScheduleDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fixedassets_schedule_duration_seconds",
				Help:    "Duration of schedule operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		LedgerRowsWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixedassets_ledger_rows_written_total",
				Help: "Ledger rows inserted by ledger",
			},
			[]string{"ledger"},
		),
		ScheduleWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "fixedassets_schedule_warnings_total",
			Help: "Assets created with a failed schedule generation",
		}),

		// Policy metrics
		PolicyRateChanges: factory.NewCounter(prometheus.CounterOpts{
			Name: "fixedassets_policy_rate_changes_total",
			Help: "Total number of depreciation rate changes",
		}),
		PolicyFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "fixedassets_policy_fallbacks_total",
			Help: "Lookups that fell back to the unconfigured policy",
		}),
		RateChangeAssets: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixedassets_rate_change_assets_total",
				Help: "Per-asset recalculations after a rate change by status",
			},
			[]string{"status"},
		),

		// Period calendar metrics
		PeriodCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixedassets_period_cache_lookups_total",
				Help: "Period cache lookups by result",
			},
			[]string{"result"},
		),

		// Event metrics
		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fixedassets_events_published_total",
				Help: "Outbox events published by status",
			},
			[]string{"status"},
		),
	}
}
