package catalog

import (
	"time"

	"emoji-catalog/core/transport"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the client's Prometheus collectors.
type Metrics struct {
	// Refreshes counts refreshes by endpoint and outcome (ok, transport, decoding).
	Refreshes *prometheus.CounterVec
	// Duration records refresh latency by endpoint, including decoding.
	Duration *prometheus.HistogramVec
	// CacheSize reports the number of cached instances per kind.
	CacheSize *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "emoji_catalog",
			Name:      "refreshes_total",
			Help:      "Number of collection refreshes by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "emoji_catalog",
			Name:      "refresh_duration_seconds",
			Help:      "Duration of collection refreshes in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		CacheSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "emoji_catalog",
			Name:      "cache_entries",
			Help:      "Number of cached instances per kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.Refreshes, m.Duration, m.CacheSize)
	return m
}

func (m *Metrics) observe(endpoint transport.Endpoint, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Refreshes.WithLabelValues(endpoint.String(), outcome).Inc()
	m.Duration.WithLabelValues(endpoint.String()).Observe(elapsed.Seconds())
}

func (m *Metrics) setSize(kind string, n int) {
	if m == nil {
		return
	}
	m.CacheSize.WithLabelValues(kind).Set(float64(n))
}
