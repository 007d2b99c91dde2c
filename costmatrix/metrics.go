package costmatrix

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the construction metrics of cost matrices. Lookups are not
// instrumented: they sit on the optimizer's hot path.
type Metrics struct {
	Builds           *prometheus.CounterVec
	CompletionTime   *prometheus.HistogramVec
	UnreachablePairs *prometheus.GaugeVec
}

// NewMetrics creates and registers the metrics on reg.
// Like promauto, it panics if the metrics are already registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Builds: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roadcost_matrix_builds_total",
				Help: "Cost matrix builds by result",
			},
			[]string{"result"},
		),
		CompletionTime: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "roadcost_completion_duration_seconds",
				Help:    "Duration of one metric's all-pairs completion",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
			[]string{"metric", "engine"},
		),
		UnreachablePairs: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "roadcost_unreachable_pairs",
				Help: "Ordered node pairs without a path in the last built matrix",
			},
			[]string{"metric"},
		),
	}
}
