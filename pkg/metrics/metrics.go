// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ResponsesTotal tracks assistant replies by classified intent.
	ResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_responses_total",
			Help: "Assistant replies by classified intent",
		},
		[]string{"intent"},
	)

	// ResponseDuration tracks end-to-end reply synthesis duration.
	ResponseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_response_duration_seconds",
			Help:    "Reply synthesis duration including lazy catalog init",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10},
		},
	)

	// CatalogFetchDuration tracks storefront backend fetch duration.
	CatalogFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_fetch_duration_seconds",
			Help:    "Storefront backend fetch duration",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"resource"},
	)

	// CatalogFetchFailures tracks storefront backend fetch failures.
	CatalogFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_failures_total",
			Help: "Storefront backend fetch failures",
		},
		[]string{"resource"},
	)

	// SessionsActive tracks currently mounted chat sessions.
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_sessions_active",
			Help: "Currently mounted chat sessions",
		},
	)

	// MessagesTotal tracks transcript messages by sender.
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Transcript messages appended, by sender",
		},
		[]string{"sender"},
	)

	// EventsPublished tracks transcript events published to the stream.
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_events_published_total",
			Help: "Transcript events published to JetStream",
		},
		[]string{"type", "status"},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordResponse records metrics for a synthesized assistant reply.
func RecordResponse(intent string, duration float64) {
	ResponsesTotal.WithLabelValues(intent).Inc()
	ResponseDuration.Observe(duration)
}

// RecordCatalogFetch records a storefront backend fetch.
func RecordCatalogFetch(resource string, duration float64, err error) {
	CatalogFetchDuration.WithLabelValues(resource).Observe(duration)
	if err != nil {
		CatalogFetchFailures.WithLabelValues(resource).Inc()
	}
}
