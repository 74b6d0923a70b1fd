package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream request outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
)

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry replaces the registry metrics are registered on and served from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// WithHistogramBuckets sets custom buckets for the latency histogram.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// Manager holds the service's Prometheus collectors.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	upstreamRequests *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	httpRequests     *prometheus.CounterVec
}

// NewManager creates a Manager backed by a fresh registry unless WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "catalog",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)
	m.upstreamRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of backend catalog requests by outcome",
	}, []string{"outcome"})

	m.upstreamDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of backend catalog requests",
		Buckets:   m.buckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total number of inbound HTTP requests",
	}, []string{"route", "method", "status"})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveUpstream records a single backend call. It satisfies upstream.Recorder.
func (m *Manager) ObserveUpstream(statusCode int, err error, elapsed time.Duration) {
	m.upstreamDuration.Observe(elapsed.Seconds())
	m.upstreamRequests.WithLabelValues(Outcome(statusCode, err)).Inc()
}

// RecordHTTPRequest counts one inbound request.
func (m *Manager) RecordHTTPRequest(route, method string, status int) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Registry returns the registry backing this Manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Outcome classifies a backend call.
func Outcome(statusCode int, err error) string {
	switch {
	case err != nil:
		return OutcomeTransportError
	case statusCode >= 200 && statusCode < 300:
		return OutcomeSuccess
	default:
		return OutcomeUpstreamError
	}
}
