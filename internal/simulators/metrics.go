package simulators

import (
	"telemetry-dashboard/internal/shared/metrics"
)

var (
	metricPredictionRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSimulator,
			Name:      "prediction_runs_total",
		},
		[]string{"trigger"},
	)

	// metricConsensusEcoScore holds the consensus score of the latest run.
	metricConsensusEcoScore = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSimulator,
			Name:      "consensus_eco_score",
		},
	)
)
