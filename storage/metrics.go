package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_operation_duration_seconds",
			Help:    "Duration of storage engine operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "target"},
	)

	operationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_operation_failures_total",
			Help: "Total number of failed storage engine operations",
		},
		[]string{"operation"},
	)

	backupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storage_backups_total",
			Help: "Total number of backups created",
		},
	)
)

func trackOperation(operation, target string) *prometheus.Timer {
	return prometheus.NewTimer(operationDuration.WithLabelValues(operation, target))
}

func trackFailure(operation string) {
	operationFailures.WithLabelValues(operation).Inc()
}
