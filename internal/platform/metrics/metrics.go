// Package metrics owns the prometheus registry and the collectors the service reports on.
// All methods are safe on a nil *Metrics so callers can run without instrumentation
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

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "tgage"

// Lookup outcomes
const (
	LookupResolved = "resolved"
	LookupFallback = "fallback"
	LookupInvalid  = "invalid"
	LookupError    = "error"
)

// Metrics groups the collectors registered on a private registry
type Metrics struct {
	reg *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	lookups         *prometheus.CounterVec
	estimates       *prometheus.CounterVec
	upstream        *prometheus.HistogramVec
	retries         *prometheus.CounterVec
}

// New builds a registry with go and process collectors plus the service collectors
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status",
		}, []string{"method", "route", "status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern",
			Buckets:   []float64{.005, .01, .05, .1, .5, 1, 1.5, 2, 3, 5, 10},
		}, []string{"method", "route"}),
		lookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Username lookups by outcome",
		}, []string{"outcome"}),
		estimates: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Estimates produced by confidence label",
		}, []string{"confidence"}),
		upstream: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "telegram",
			Name:      "call_duration_seconds",
			Help:      "Bot API call latency by method and outcome",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "outcome"}),
		retries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "telegram",
			Name:      "retries_total",
			Help:      "Bot API retries by method",
		}, []string{"method"}),
	}
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveHTTP matches middleware.Observer
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveLookup counts one lookup outcome
func (m *Metrics) ObserveLookup(outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
}

// ObserveEstimate counts one produced estimate by its confidence label
func (m *Metrics) ObserveEstimate(confidence string) {
	if m == nil {
		return
	}
	m.estimates.WithLabelValues(confidence).Inc()
}

// ObserveUpstream records one finished Bot API call
func (m *Metrics) ObserveUpstream(method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstream.WithLabelValues(method, outcome).Observe(elapsed.Seconds())
}

// ObserveRetry counts one retried Bot API call
func (m *Metrics) ObserveRetry(method string) {
	if m == nil {
		return
	}
	m.retries.WithLabelValues(method).Inc()
}
