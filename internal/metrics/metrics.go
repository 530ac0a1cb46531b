// Package metrics exposes Prometheus counters for parse traffic.
//
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gs1parse"

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics holds the gs1parse collectors in a private registry.
type Metrics struct {
	reg *prometheus.Registry

	parses        *prometheus.CounterVec
	elements      *prometheus.CounterVec
	duration      prometheus.Histogram
	registrySize  prometheus.Gauge
	reloads       *prometheus.CounterVec
	cacheRequests *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
}

// New registers every gs1parse collector plus the Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parses_total",
			Help:      "Payloads parsed, by result mode.",
		}, []string{"mode"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "elements_total",
			Help:      "Elements extracted, by Application Identifier.",
		}, []string{"ai"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Time spent parsing one payload.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		registrySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "registry_size",
			Help:      "Application Identifiers in the active table.",
		}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_reloads_total",
			Help:      "AI table reloads, by outcome.",
		}, []string{"result"}),
		cacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Result cache lookups, by outcome.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status code.",
		}, []string{"route", "code"}),
	}
	m.reg.MustRegister(
		m.parses, m.elements, m.duration, m.registrySize,
		m.reloads, m.cacheRequests, m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveParse records one parse in mode that produced elements with the
// given AI codes.
func (m *Metrics) ObserveParse(mode string, codes []string, took time.Duration) {
	if m == nil {
		return
	}
	m.parses.WithLabelValues(mode).Inc()
	for _, c := range codes {
		m.elements.WithLabelValues(c).Inc()
	}
	m.duration.Observe(took.Seconds())
}

func (m *Metrics) SetRegistrySize(n int) {
	if m == nil {
		return
	}
	m.registrySize.Set(float64(n))
}

// RegistryReloaded counts a table reload attempt.
func (m *Metrics) RegistryReloaded(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.reloads.WithLabelValues(result).Inc()
}

// CacheRequest counts a cache lookup with outcome CacheHit, CacheMiss or
// CacheError.
func (m *Metrics) CacheRequest(outcome string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) HTTPRequest(route string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
