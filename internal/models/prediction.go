package models

import "time"

// ScenarioInputs are the simulator's adjustable parameters.
type ScenarioInputs struct {
	RPM              float64 `json:"rpm" validate:"min=800,max=5000"`
	Speed            float64 `json:"speed" validate:"min=0,max=180"`
	Battery          float64 `json:"battery" validate:"min=0,max=100"`
	EngineLoad       float64 `json:"engineLoad" validate:"min=0,max=100"`
	CoolantTemp      float64 `json:"coolantTemp" validate:"min=-40,max=150"`
	FuelRate         float64 `json:"fuelRate" validate:"min=0,max=100"`
	AccelerationX    float64 `json:"accelerationX" validate:"min=-2,max=2"`
	AccelerationY    float64 `json:"accelerationY" validate:"min=-2,max=2"`
	AccelerationZ    float64 `json:"accelerationZ" validate:"min=-20,max=20"`
	DistanceTraveled float64 `json:"distanceTraveled" validate:"min=0"`
}

func DefaultScenarioInputs() ScenarioInputs {
	return ScenarioInputs{
		RPM:              1800,
		Speed:            65,
		Battery:          88,
		EngineLoad:       42,
		CoolantTemp:      82,
		FuelRate:         7.8,
		AccelerationX:    0.15,
		AccelerationY:    -0.05,
		AccelerationZ:    9.81,
		DistanceTraveled: 14500,
	}
}

// ModelPrediction is one simulated model output.
type ModelPrediction struct {
	ModelID               string             `json:"modelId"`
	ModelName             string             `json:"modelName"`
	EcoScore              int                `json:"ecoScore"`
	AlarmLevel            int                `json:"alarmLevel"`
	Confidence            float64            `json:"confidence"`
	FuelEfficiencyGain    float64            `json:"fuelEfficiencyGain"`
	CO2ReductionPotential float64            `json:"co2ReductionPotential"`
	Recommendations       []string           `json:"recommendations"`
	FeatureImportance     map[string]float64 `json:"featureImportance"`
	Timestamp             time.Time          `json:"timestamp"`
}

// Consensus is the averaged score and majority alarm level across models.
type Consensus struct {
	EcoScore   int `json:"ecoScore"`
	AlarmLevel int `json:"alarmLevel"`
	ModelCount int `json:"modelCount"`
}

type VehicleSummary struct {
	EcoScore       int     `json:"ecoScore"`
	CurrentAlarm   int     `json:"currentAlarm"`
	FuelEfficiency float64 `json:"fuelEfficiency"`
	CO2Saved       float64 `json:"co2Saved"`
}

type PredictionTrigger string

const (
	TriggerStartup  PredictionTrigger = "startup"
	TriggerPeriodic PredictionTrigger = "periodic"
	TriggerInput    PredictionTrigger = "input"
	TriggerManual   PredictionTrigger = "manual"
)

// PredictionRun is one evaluation of every simulated model over the same inputs.
type PredictionRun struct {
	RunID       string            `json:"runId"`
	Trigger     PredictionTrigger `json:"trigger"`
	Inputs      ScenarioInputs    `json:"inputs"`
	Predictions []ModelPrediction `json:"predictions"`
	Consensus   Consensus         `json:"consensus"`
	Vehicle     VehicleSummary    `json:"vehicle"`
	CreatedAt   time.Time         `json:"createdAt"`
}
