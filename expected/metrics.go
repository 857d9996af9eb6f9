// SPDX-License-Identifier: MIT

package expected

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts driver progress. All vectors are labeled by driver name.
type Metrics struct {
	Cases     *prometheus.CounterVec
	Evaluated *prometheus.CounterVec
	Skipped   *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

// NewMetrics registers the run metrics on reg. Registering twice on the same
// registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Cases: f.NewCounterVec(prometheus.CounterOpts{
			Name: "armaexpected_cases_total",
			Help: "Case rows processed",
		}, []string{"driver"}),
		Evaluated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "armaexpected_probes_evaluated_total",
			Help: "Probes that passed their guard and were persisted",
		}, []string{"driver"}),
		Skipped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "armaexpected_probes_skipped_total",
			Help: "Probes whose guard rejected the case",
		}, []string{"driver"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "armaexpected_driver_duration_seconds",
			Help:    "Wall time of one driver run",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"driver"}),
	}
}

// driverMetrics are the curried per-driver collectors; the zero value is a no-op.
type driverMetrics struct {
	cases, evaluated, skipped prometheus.Counter
	duration                  prometheus.Observer
}

func (m *Metrics) forDriver(name string) driverMetrics {
	if m == nil {
		return driverMetrics{}
	}

	return driverMetrics{
		cases:     m.Cases.WithLabelValues(name),
		evaluated: m.Evaluated.WithLabelValues(name),
		skipped:   m.Skipped.WithLabelValues(name),
		duration:  m.Duration.WithLabelValues(name),
	}
}

func inc(c prometheus.Counter) {
	if c != nil {
		c.Inc()
	}
}
