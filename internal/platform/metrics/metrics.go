package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	VehiclesCreated      prometheus.Counter
	VehiclesUpdated      prometheus.Counter
	ListingsCreated      prometheus.Counter
	SubmissionsRejected  prometheus.Counter
	AccountsRegistered   prometheus.Counter
	SubmitDurationMs     prometheus.Histogram
	CatalogCacheHits     prometheus.Counter
	CatalogCacheMisses   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		VehiclesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autobox_vehicles_created_total",
			Help: "Total number of vehicle records created",
		}),
		VehiclesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autobox_vehicles_updated_total",
			Help: "Total number of vehicle records updated on re-submission",
		}),
		ListingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autobox_listings_created_total",
			Help: "Total number of listings published",
		}),
		SubmissionsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autobox_submissions_rejected_total",
			Help: "Total number of listing submissions rejected by form validation",
		}),
		AccountsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autobox_accounts_registered_total",
			Help: "Total number of accounts registered",
		}),
		SubmitDurationMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "autobox_submit_duration_ms",
			Help:    "Latency of the full listing submission pipeline in milliseconds",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		CatalogCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autobox_catalog_cache_hits_total",
			Help: "Catalog reference lookups served from the Redis cache",
		}),
		CatalogCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "autobox_catalog_cache_misses_total",
			Help: "Catalog reference lookups that fell through to the store",
		}),
	}
}

// ObserveSubmitDuration records one submission pipeline duration.
func (m *Metrics) ObserveSubmitDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.SubmitDurationMs.Observe(float64(d.Microseconds()) / 1000.0)
}
