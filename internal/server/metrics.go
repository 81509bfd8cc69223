package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/customers/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "customers"

// Metrics holds the Prometheus collectors exposed on GET /metrics.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	customers prometheus.Gauge
}

// NewMetrics creates a [Metrics] on its own registry, including Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		customers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "stored",
			Help:      "Customers currently stored.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.customers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing the metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest counts and times one request. The route label is the matched mux pattern.
func (m *Metrics) ObserveRequest(r *http.Request, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	route := r.Pattern
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// SetCustomers records the stored customer count.
func (m *Metrics) SetCustomers(n int) {
	if m == nil {
		return
	}
	m.customers.Set(float64(n))
}

// MetricsHandler serves the Prometheus text exposition, refreshing the customer gauge on each scrape.
type MetricsHandler struct {
	metrics *Metrics
	store   models.CustomerStore
	logger  *log.Logger
	next    http.Handler
}

// NewMetricsHandler creates a [MetricsHandler].
func NewMetricsHandler(metrics *Metrics, store models.CustomerStore, logger *log.Logger) *MetricsHandler {
	return &MetricsHandler{
		metrics: metrics,
		store:   store,
		logger:  logger,
		next:    promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *MetricsHandler) Routes() []string {
	return []string{"GET /metrics"}
}

// ServeHTTP updates the customer gauge and writes every registered metric.
//
// A failed count leaves the previous gauge value in place.
func (h *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Count(r.Context())
	if err != nil {
		h.logger.Warn("metrics could not count customers", "error", err)
	} else {
		h.metrics.SetCustomers(n)
	}

	h.next.ServeHTTP(w, r)
}
