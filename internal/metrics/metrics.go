package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PointOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "point_operations_total",
			Help: "Charge/use calls by outcome",
		},
		[]string{"type", "result"}, // charge|use, accepted|invalid_amount|...
	)

	// Sum of accepted amounts only.
	PointAmountTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "point_amount_total",
			Help: "Total points moved by accepted operations",
		},
		[]string{"type"},
	)

	// Worker kuyruğu
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// /metrics endpoint'i için handler
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(PointOperationsTotal)
		prometheus.MustRegister(PointAmountTotal)
		prometheus.MustRegister(WorkerQueueDepth)
	})
}

func RecordPointOperation(op, result string, amount int64) {
	PointOperationsTotal.WithLabelValues(op, result).Inc()
	if result == "accepted" {
		PointAmountTotal.WithLabelValues(op).Add(float64(amount))
	}
}
