package streams

import (
	"telemetry-dashboard/internal/shared/metrics"
)

// StreamPredictions is the stream id of prediction run events.
const StreamPredictions = "predictions"

var (
	metricHubSubscribers = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "subscribers",
		},
		[]string{"stream_id"},
	)

	metricHubPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_published_total",
		},
		[]string{"stream_id"},
	)

	// metricHubDroppedTotal counts per-subscriber deliveries skipped because the subscriber was behind.
	metricHubDroppedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_dropped_total",
		},
		[]string{"stream_id"},
	)

	metricScheduledRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "scheduled_runs_total",
		},
		[]string{"trigger", metrics.FieldErrorCode},
	)

	metricExternalPublishTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "external_publish_total",
		},
		[]string{"stream_id", "outcome"},
	)
)
