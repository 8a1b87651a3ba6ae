// Package metrics exposes Prometheus collectors for the library API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultNamespace = "library"
	defaultSubsystem = "api"
)

// Manager owns the HTTP and store collectors and the registry they live in.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	sessionsOpen        prometheus.Gauge
}

// Option configures a Manager.
type Option func(*Manager)

func WithNamespace(ns string) Option {
	return func(m *Manager) { m.namespace = ns }
}

func WithBuckets(buckets []float64) Option {
	return func(m *Manager) { m.buckets = buckets }
}

// WithRegistry registers collectors on r instead of a fresh registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) { m.registry = r }
}

// NewManager creates collectors on a private registry so tests can build many managers.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: defaultNamespace,
		subsystem: defaultSubsystem,
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   m.buckets,
	}, []string{"method", "route"})

	m.sessionsOpen = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "db_sessions_open",
		Help:      "Request-scoped database sessions currently held.",
	})

	m.registry.MustRegister(m.httpRequests, m.httpRequestDuration, m.sessionsOpen)
	return m
}

// ObserveHTTP records one finished request.
func (m *Manager) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Manager) SessionOpened() { m.sessionsOpen.Inc() }

func (m *Manager) SessionClosed() { m.sessionsOpen.Dec() }

// Registry exposes the underlying registry (tests gather from it).
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
