package ingestors

import (
	"telemetry-dashboard/internal/shared/metrics"
)

var (
	metricDatasetLoadDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "dataset_load_duration_seconds",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	metricDatasetRecords = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "dataset_records",
			Help:      "Records in the current dataset snapshot.",
		},
	)
)
