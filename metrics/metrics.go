// Package metrics records computation outcomes as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ezrec/tm/computation"
)

// Recorder holds the computation metrics.
type Recorder struct {
	Steps        prometheus.Counter
	Computations *prometheus.CounterVec
	TapeCells    prometheus.Histogram
}

// NewRecorder creates a recorder and registers its metrics.
func NewRecorder(reg prometheus.Registerer) (rec *Recorder, err error) {
	rec = &Recorder{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tm_steps_total",
			Help: "Total number of computation steps",
		}),
		Computations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tm_computations_total",
			Help: "Total number of halted computations",
		}, []string{"status"}),
		TapeCells: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tm_tape_cells",
			Help:    "Tape length of halted computations",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{rec.Steps, rec.Computations, rec.TapeCells} {
		err = reg.Register(c)
		if err != nil {
			return nil, err
		}
	}

	return
}

// Hooks returns computation hooks that feed the recorder.
func (rec *Recorder) Hooks() computation.Hooks {
	return computation.Hooks{
		OnStep: func(*computation.Computation) {
			rec.Steps.Inc()
		},
		OnHalt: func(c *computation.Computation) {
			rec.Computations.WithLabelValues(c.Status().String()).Inc()
			rec.TapeCells.Observe(float64(c.Clock().Space))
		},
	}
}
