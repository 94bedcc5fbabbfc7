// Package metrics exposes Prometheus instrumentation for the validator
// service on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values for the result label of card_validations_total.
const (
	ResultValid    = "valid"
	ResultInvalid  = "invalid"
	ResultRejected = "rejected"
)

// Metrics holds all Prometheus metrics for the validator service.
type Metrics struct {
	validationsTotal *prometheus.CounterVec
	historyWrites    *prometheus.CounterVec

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates a Metrics instance with its own registry. Go runtime
// and process collectors are registered alongside the service metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "card_validations_total",
				Help: "Total number of card validation requests by result and card type",
			},
			[]string{"result", "type"},
		),

		historyWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "card_history_writes_total",
				Help: "Total number of validation history writes by status",
			},
			[]string{"status"},
		),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "card_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "card_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.validationsTotal,
		m.historyWrites,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordValidation counts a completed Luhn check.
func (m *Metrics) RecordValidation(valid bool, cardType string) {
	result := ResultInvalid
	if valid {
		result = ResultValid
	}
	m.validationsTotal.WithLabelValues(result, cardType).Inc()
}

// RecordRejection counts a request refused before the Luhn check.
func (m *Metrics) RecordRejection() {
	m.validationsTotal.WithLabelValues(ResultRejected, "").Inc()
}

// RecordHistoryWrite counts a history write attempt.
func (m *Metrics) RecordHistoryWrite(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.historyWrites.WithLabelValues(status).Inc()
}

// RecordHTTPRequest records HTTP request metrics.
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// Handler returns the Prometheus metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records count and latency of every request. The endpoint
// label is the matched chi route pattern, so path parameters do not blow
// up label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RecordHTTPRequest(r.Method, endpointName(r), status, time.Since(start))
	})
}

func endpointName(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
