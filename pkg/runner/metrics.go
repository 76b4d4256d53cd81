package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "endpointctl_command_total",
			Help: "Total number of external command invocations",
		},
		[]string{"tool", "status"}, // tool is the leading token, e.g. kubectl or gcloud
	)

	commandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "endpointctl_command_duration_seconds",
			Help:    "Time taken by individual external command invocations",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"tool"},
	)
)
