package aggregators

import (
	"telemetry-dashboard/internal/shared/metrics"
)

// metricDashboardViewDuration observes the time spent re-aggregating a dashboard view.
//
// The time_range label is the normalized range code ("1h", "24h", "7d", "30d", "all").
// Views for "all" reuse the statistics computed at load and observe near-zero durations;
// bounded ranges re-run the accumulator and the sampler over the filtered records.
var (
	metricDashboardViewDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "dashboard_view_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"time_range"},
	)
)
