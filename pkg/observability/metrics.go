package observability

import (
	"context"

	"github.com/aretw0/marvin/pkg/action"
	"github.com/aretw0/marvin/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels besides the error kinds reported by domain.Kind.
const (
	OutcomeOK     = "ok"
	OutcomeCached = "cached"
)

// Metrics holds the collectors fed by the reducer hooks.
type Metrics struct {
	Reductions *prometheus.CounterVec
	Actions    *prometheus.CounterVec
	SeedLength prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Reductions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marvin_reductions_total",
				Help: "Reductions by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		Actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marvin_action_applications_total",
				Help: "Blocks transformed per action",
			},
			[]string{"action"},
		),
		SeedLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "marvin_seed_length_chars",
				Help:    "Seed length after whitespace removal",
				Buckets: prometheus.ExponentialBuckets(16, 2, 8),
			},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Reductions, m.Actions, m.SeedLength} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle callbacks that update m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReduceStart: func(_ context.Context, e *domain.ReduceEvent) {
			m.SeedLength.Observe(float64(e.SeedLength))
		},
		OnGroup: func(_ context.Context, e *domain.GroupEvent) {
			a, err := action.Select(e.Selector)
			if err != nil {
				return
			}
			m.Actions.WithLabelValues(a.String()).Inc()
		},
		OnReduceEnd: func(_ context.Context, e *domain.ReduceEvent) {
			outcome := OutcomeOK
			switch {
			case e.Err != nil:
				outcome = domain.Kind(e.Err)
			case e.CacheHit:
				outcome = OutcomeCached
			}
			m.Reductions.WithLabelValues(string(e.Mode), outcome).Inc()
		},
	}
}
