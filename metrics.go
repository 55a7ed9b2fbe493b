package uktag

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts how words get their additional readings.
type Metrics struct {
	resolved   *prometheus.CounterVec
	unresolved prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "uktag",
			Name:      "resolved_total",
			Help:      "Words that received additional readings, by rule.",
		}, []string{"rule"}),
		unresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uktag",
			Name:      "compounds_unresolved_total",
			Help:      "Hyphenated compounds no rule could tag.",
		}),
	}
	for _, c := range []prometheus.Collector{m.resolved, m.unresolved} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeResolved(rule string) {
	if m == nil {
		return
	}
	m.resolved.WithLabelValues(rule).Inc()
}

func (m *Metrics) observeUnresolved() {
	if m == nil {
		return
	}
	m.unresolved.Inc()
}
