package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements AssertionMetrics with Prometheus
// counters kept on a private registry, so several instances can
// coexist in one process.
type PrometheusMetrics struct {
	registry   *prometheus.Registry
	assertions *prometheus.CounterVec
	mismatches *prometheus.CounterVec
}

// NewPrometheusMetrics creates counters under the given namespace,
// e.g. "expectctl".
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		assertions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "assertions_total",
				Help:      "Evaluated assertions by verb, qualifier and outcome.",
			},
			[]string{"verb", "qualifier", "outcome"},
		),
		mismatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "type_mismatches_total",
				Help:      "Assertions rejected because the operand types are unsupported.",
			},
			[]string{"verb"},
		),
	}
	m.registry.MustRegister(m.assertions, m.mismatches)
	return m
}

func (m *PrometheusMetrics) RecordAssertion(verb, qualifier string, passed bool) {
	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	m.assertions.WithLabelValues(verb, qualifier, outcome).Inc()
}

func (m *PrometheusMetrics) RecordTypeMismatch(verb string) {
	m.mismatches.WithLabelValues(verb).Inc()
}

// Registry exposes the underlying registry for gathering.
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus text
// exposition format.
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
