package reporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "endpointctl_report_duration_seconds",
			Help:    "Time taken to produce a complete endpoint report",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	reportTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "endpointctl_report_total",
			Help: "Total number of report runs",
		},
		[]string{"status"}, // ok or error
	)

	clusterDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "endpointctl_cluster_duration_seconds",
			Help:    "Time taken to collect endpoints from individual clusters",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"cluster"},
	)

	endpointsDiscovered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "endpointctl_endpoints_discovered",
			Help: "Number of endpoint records in the last report",
		},
	)
)
