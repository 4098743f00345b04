// Package metrics owns the Prometheus collectors exported by the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tlvconfig"

// Translation outcomes used as the "outcome" label.
const (
	OutcomeOK            = "ok"
	OutcomeUnknownKey    = "unknown_key"
	OutcomeTypeMismatch  = "type_mismatch"
	OutcomeRuleViolation = "rule_violation"
	OutcomeMalformed     = "malformed"
	OutcomeError         = "error"
)

// Metrics groups the collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	Translations    *prometheus.CounterVec
	RenderedLines   prometheus.Counter
	RequestDuration *prometheus.HistogramVec
	CatalogSize     prometheus.Gauge
}

// New creates a private registry with the service collectors plus Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "translations_total",
			Help:      "Translate calls by transport and outcome.",
		}, []string{"transport", "outcome"}),
		RenderedLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rendered_lines_total",
			Help:      "Macro lines produced by successful translations.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code"}),
		CatalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_parameters",
			Help:      "Number of parameters in the loaded catalog.",
		}),
	}

	m.registry.MustRegister(
		m.Translations,
		m.RenderedLines,
		m.RequestDuration,
		m.CatalogSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveTranslation records one translate call.
func (m *Metrics) ObserveTranslation(transport, outcome string, lines int) {
	m.Translations.WithLabelValues(transport, outcome).Inc()
	if outcome == OutcomeOK {
		m.RenderedLines.Add(float64(lines))
	}
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(route, code string, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(route, code).Observe(elapsed.Seconds())
}
