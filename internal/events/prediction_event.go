package events

import (
	"time"

	"telemetry-dashboard/internal/models"
)

// PredictionEvent announces one completed simulator run. It is fanned out to
// websocket subscribers and, when configured, published on a NATS subject.
//
// The run is inlined, so the payload is the run plus the publish time.
//
// Example JSON (abridged):
//
//	{
//	  "runId": "01HZX7K3M4T9Q2W8E5R6Y1U0IP",
//	  "trigger": "periodic",
//	  "inputs": {"rpm": 1800, "speed": 65, "accelerationX": 0.15},
//	  "predictions": [{"modelId": "random_forest", "ecoScore": 97, "alarmLevel": 0}],
//	  "consensus": {"ecoScore": 96, "alarmLevel": 0, "modelCount": 4},
//	  "vehicle": {"ecoScore": 96, "currentAlarm": 0, "fuelEfficiency": 14.8, "co2Saved": 5.76},
//	  "createdAt": "2024-05-01T12:00:00Z",
//	  "publishedAt": "2024-05-01T12:00:00.002Z"
//	}
type PredictionEvent struct {
	models.PredictionRun
	PublishedAt time.Time `json:"publishedAt"`
}

func NewPredictionEvent(run *models.PredictionRun, publishedAt time.Time) PredictionEvent {
	return PredictionEvent{PredictionRun: *run, PublishedAt: publishedAt}
}
