package assistants

import (
	"telemetry-dashboard/internal/shared/metrics"
)

var (
	// metricChatRepliesTotal counts assistant turns by source ("api" or "fallback").
	metricChatRepliesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAssistant,
			Name:      "chat_replies_total",
		},
		[]string{"source"},
	)

	metricChatCompletionDuration = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAssistant,
			Name:      "chat_completion_duration_seconds",
			Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
	)
)
