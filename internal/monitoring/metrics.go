// internal/monitoring/metrics.go

// Package monitoring exposes Prometheus metrics for the fetch, extraction
// and export paths, plus a small HTTP endpoint serving them. Entirely
// optional: the core flow never depends on it.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects counters and histograms for the scraping pipeline.
type Metrics struct {
	relayRequests   *prometheus.CounterVec
	relayDuration   *prometheus.HistogramVec
	extractions     *prometheus.CounterVec
	itemsExtracted  *prometheus.CounterVec
	exports         *prometheus.CounterVec
	profileFailures prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates and registers the metric set on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		relayRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soundscrape_relay_requests_total",
				Help: "Relay fetches by resource and outcome",
			},
			[]string{"resource", "outcome"},
		),
		relayDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "soundscrape_relay_request_duration_seconds",
				Help:    "Relay fetch duration by resource",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
		extractions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soundscrape_extractions_total",
				Help: "Extraction attempts by source (hydration, dom, meta) and outcome",
			},
			[]string{"source", "outcome"},
		),
		itemsExtracted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soundscrape_items_extracted_total",
				Help: "Normalized records produced by resource kind",
			},
			[]string{"resource"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "soundscrape_exports_total",
				Help: "Export artifacts generated by format",
			},
			[]string{"format"},
		),
		profileFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "soundscrape_profile_failures_total",
				Help: "Profile loads that failed hard",
			},
		),
	}

	registry.MustRegister(
		m.relayRequests,
		m.relayDuration,
		m.extractions,
		m.itemsExtracted,
		m.exports,
		m.profileFailures,
	)
	return m
}

// Registry returns the backing registry for the HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// RecordRelayRequest records one relay fetch and its duration.
func (m *Metrics) RecordRelayRequest(resource, outcome string, duration time.Duration) {
	m.relayRequests.WithLabelValues(resource, outcome).Inc()
	m.relayDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

// RecordExtraction records an extraction attempt.
func (m *Metrics) RecordExtraction(source, outcome string) {
	m.extractions.WithLabelValues(source, outcome).Inc()
}

// RecordItems records normalized records produced for a resource kind.
func (m *Metrics) RecordItems(resource string, count int) {
	m.itemsExtracted.WithLabelValues(resource).Add(float64(count))
}

// RecordExport records one generated artifact.
func (m *Metrics) RecordExport(format string) {
	m.exports.WithLabelValues(format).Inc()
}

// RecordProfileFailure records a hard profile load failure.
func (m *Metrics) RecordProfileFailure() {
	m.profileFailures.Inc()
}
