package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the inspection server.
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight *prometheus.GaugeVec

	walksTotal         *prometheus.CounterVec
	walkDuration       prometheus.Histogram
	chunksEmitted      prometheus.Counter
	payloadBytesServed prometheus.Counter
}

// NewMetrics creates and registers all metrics on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the metrics on reg; tests pass a fresh registry.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dreamsparer_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dreamsparer_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		httpRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dreamsparer_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method", "endpoint"},
		),
		walksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dreamsparer_walks_total",
				Help: "Total number of chunk tree traversals",
			},
			[]string{"status"},
		),
		walkDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dreamsparer_walk_duration_seconds",
				Help:    "Chunk tree traversal duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		chunksEmitted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dreamsparer_chunks_emitted_total",
				Help: "Total number of chunks produced by traversals",
			},
		),
		payloadBytesServed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "dreamsparer_payload_bytes_served_total",
				Help: "Total payload bytes served over HTTP",
			},
		),
	}
}

// RecordWalk records one traversal.
func (m *Metrics) RecordWalk(chunks int, err error, duration time.Duration) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.walksTotal.WithLabelValues(status).Inc()
	m.walkDuration.Observe(duration.Seconds())
	m.chunksEmitted.Add(float64(chunks))
}

// RecordPayloadServed records payload bytes sent to a client.
func (m *Metrics) RecordPayloadServed(n int) {
	m.payloadBytesServed.Add(float64(n))
}

// InstrumentHandler instruments an HTTP handler with request metrics.
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		gauge := m.httpRequestsInFlight.WithLabelValues(method, endpoint)
		gauge.Inc()
		defer gauge.Dec()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		handler(rw, r)

		m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
