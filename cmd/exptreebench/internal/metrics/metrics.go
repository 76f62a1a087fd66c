// Package metrics holds the Prometheus collectors exptreebench exports
// while driving workloads against the tree.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every Prometheus collector a benchmark run touches.
type Metrics struct {
	OpsTotal     *prometheus.CounterVec
	OpDuration   *prometheus.HistogramVec
	BytesUsed    prometheus.Gauge
	BytesInCache prometheus.Gauge
	OutOfMemory  prometheus.Counter
}

// New creates and registers the collectors against the default registry.
func New() *Metrics {
	return &Metrics{
		OpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exptreebench_ops_total",
				Help: "Total tree operations performed, by kind and outcome.",
			},
			[]string{"op", "outcome"},
		),
		OpDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exptreebench_op_duration_seconds",
				Help:    "Per-operation latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		BytesUsed: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "exptreebench_bytes_used",
			Help: "Accounted size of nodes reachable from the tree root.",
		}),
		BytesInCache: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "exptreebench_bytes_in_cache",
			Help: "Accounted size of nodes sitting in the size-class cache.",
		}),
		OutOfMemory: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exptreebench_out_of_memory_total",
			Help: "Put calls that failed with an allocation error.",
		}),
	}
}
