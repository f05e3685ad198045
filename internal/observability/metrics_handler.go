// Package observability exposes Prometheus metrics for the risk
// engines: request latency and count (recorded by the HTTP
// middleware), facility throughput per engine (recorded by
// internal/engine), and a session-store-size gauge and a
// weather-fallback counter. The last two are registered, but neither
// internal/session nor internal/weather updates them.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler provides the Prometheus metrics endpoint and the
// named collectors the engines report against.
type MetricsHandler struct {
	registry *prometheus.Registry

	RequestDuration   *prometheus.HistogramVec
	RequestsTotal     *prometheus.CounterVec
	FacilitiesAnalysed *prometheus.CounterVec
	SessionCount      prometheus.Gauge
	WeatherFallbacks  prometheus.Counter
}

// NewMetricsHandler creates a metrics handler with a fresh registry.
func NewMetricsHandler() *MetricsHandler {
	return NewMetricsHandlerWithRegistry(prometheus.NewRegistry())
}

// NewMetricsHandlerWithRegistry creates a metrics handler backed by
// registry, registering riskcore's collectors against it.
func NewMetricsHandlerWithRegistry(registry *prometheus.Registry) *MetricsHandler {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	h := &MetricsHandler{
		registry: registry,
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "riskcore_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "riskcore_requests_total",
			Help: "HTTP requests by route and status class.",
		}, []string{"route", "status"}),
		FacilitiesAnalysed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "riskcore_facilities_analysed_total",
			Help: "Facilities analysed by engine (transition, physical, esg).",
		}, []string{"engine"}),
		SessionCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "riskcore_active_sessions",
			Help: "Current number of live partner sessions.",
		}),
		WeatherFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "riskcore_weather_fallbacks_total",
			Help: "Times the weather client fell back to latitude-band defaults.",
		}),
	}

	h.registry.MustRegister(h.RequestDuration, h.RequestsTotal, h.FacilitiesAnalysed, h.SessionCount, h.WeatherFallbacks)
	return h
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (h *MetricsHandler) Handler() http.Handler {
	return promhttp.HandlerFor(
		h.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
		},
	)
}

// Registry returns the Prometheus registry.
func (h *MetricsHandler) Registry() *prometheus.Registry {
	return h.registry
}

// RegisterCollector registers an additional Prometheus collector.
func (h *MetricsHandler) RegisterCollector(collector prometheus.Collector) error {
	return h.registry.Register(collector)
}

// ObserveRequest records one completed HTTP request's latency and
// outcome.
func (h *MetricsHandler) ObserveRequest(route string, statusClass string, duration time.Duration) {
	h.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
	h.RequestsTotal.WithLabelValues(route, statusClass).Inc()
}
