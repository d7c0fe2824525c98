package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// Metrics holds the suite's Prometheus collectors.
type Metrics struct {
	Compiles        *prometheus.CounterVec
	CompileDuration prometheus.Histogram
	Validations     *prometheus.CounterVec
	Issues          *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer skips registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Compiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowsuite_compiles_total",
				Help: "Total number of flow compilations by outcome",
			},
			[]string{"outcome"},
		),
		CompileDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "flowsuite_compile_duration_seconds",
				Help:    "Duration of flow compilations",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		Validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowsuite_validations_total",
				Help: "Total number of validation calls by scope",
			},
			[]string{"scope"},
		),
		Issues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowsuite_validation_issues_total",
				Help: "Validation findings by scope and severity",
			},
			[]string{"scope", "severity"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Compiles, m.CompileDuration, m.Validations, m.Issues)
	}
	return m
}

// Hooks records every event into the collectors.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnCompile: func(_ context.Context, e *domain.CompileEvent) {
			m.Compiles.WithLabelValues(outcome(e)).Inc()
			if e.Err == nil && !e.Cached {
				m.CompileDuration.Observe(e.Duration.Seconds())
			}
		},
		OnValidate: func(_ context.Context, e *domain.ValidateEvent) {
			scope := string(e.Scope)
			m.Validations.WithLabelValues(scope).Inc()
			m.Issues.WithLabelValues(scope, "error").Add(float64(e.Errors))
			m.Issues.WithLabelValues(scope, "warning").Add(float64(e.Warnings))
		},
	}
}

func outcome(e *domain.CompileEvent) string {
	switch {
	case e.Err != nil:
		return "error"
	case e.Cached:
		return "cached"
	default:
		return "ok"
	}
}
