package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors for the feed engine and its
// transport. Served on the dedicated metrics port.
type Metrics struct {
	registry *prometheus.Registry

	FeedRequests     prometheus.Counter
	FeedColdStarts   prometheus.Counter
	FeedBuildSeconds prometheus.Histogram
}

// New creates and registers all collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		FeedRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feed_requests_total",
			Help: "Number of personalized feed requests served.",
		}),
		FeedColdStarts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feed_cold_start_total",
			Help: "Number of feed requests served via the recency-only fallback.",
		}),
		FeedBuildSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "feed_build_duration_seconds",
			Help:    "Time spent computing a personalized feed.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.FeedRequests, m.FeedColdStarts, m.FeedBuildSeconds)
	return m
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
