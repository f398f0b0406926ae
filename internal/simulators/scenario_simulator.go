package simulators

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/formats"
	"telemetry-dashboard/internal/shared/ulid"
	"telemetry-dashboard/internal/shared/validators"
)

const (
	// MaxRecommendations caps the advice attached to one prediction.
	MaxRecommendations = 3

	jitterMin      = 0.8
	jitterSpan     = 0.4
	confidenceMin  = 0.75
	confidenceSpan = 0.2
)

// Model is one simulated prediction model.
type Model struct {
	ID   string
	Name string
}

// Models lists the simulated models in evaluation order. Consensus ties depend on this order.
var Models = []Model{
	{ID: "random_forest", Name: "Random Forest"},
	{ID: "xgboost", Name: "XGBoost"},
	{ID: "lightgbm", Name: "LightGBM"},
	{ID: "neural_network", Name: "Neural Network"},
}

var featureImportance = map[string]float64{
	"rpm":          0.35,
	"speed":        0.25,
	"acceleration": 0.20,
	"engine_load":  0.15,
	"battery":      0.05,
}

// Now is the simulator clock.
var Now = func() time.Time {
	return time.Now().UTC()
}

// RandomSource yields uniform floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

//go:generate mockgen -source=scenario_simulator.go -destination=./mocks/scenario_simulator_mock.go -package=mocks
type ScenarioSimulator interface {
	// Predict simulates one model over inputs. Inputs are not validated.
	Predict(model Model, inputs models.ScenarioInputs) models.ModelPrediction
	// Run validates inputs, predicts with every model and derives the consensus.
	Run(trigger models.PredictionTrigger, inputs models.ScenarioInputs) (*models.PredictionRun, error)
	Validate(inputs models.ScenarioInputs) error
}

type scenarioSimulator struct {
	rules    []Rule
	validate *validators.Validate

	mu  sync.Mutex
	rng RandomSource
}

// NewScenarioSimulator builds a simulator. A nil rng uses the process-wide math/rand/v2 source.
func NewScenarioSimulator(rules []Rule, rng RandomSource) ScenarioSimulator {
	if rng == nil {
		rng = globalRand{}
	}
	return &scenarioSimulator{rules: rules, validate: validators.NewJSON(), rng: rng}
}

func (s *scenarioSimulator) Validate(inputs models.ScenarioInputs) error {
	err := s.validate.Struct(inputs)
	if err == nil {
		return nil
	}
	var verrs validators.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidScenarioInputs(err.Error(), err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return errInvalidScenarioInputs(strings.Join(parts, "; "), err)
}

func (s *scenarioSimulator) Predict(model Model, inputs models.ScenarioInputs) models.ModelPrediction {
	jitter, confidence := s.draw()

	score := clamp(BaseScore(inputs)*jitter, 0, 100)
	importance := make(map[string]float64, len(featureImportance))
	for k, v := range featureImportance {
		importance[k] = v
	}

	return models.ModelPrediction{
		ModelID:               model.ID,
		ModelName:             model.Name,
		EcoScore:              int(formats.Round(score)),
		AlarmLevel:            AlarmLevel(score),
		Confidence:            confidence,
		FuelEfficiencyGain:    score / 100 * 15,
		CO2ReductionPotential: score / 100 * 8,
		Recommendations:       Recommend(s.rules, inputs),
		FeatureImportance:     importance,
		Timestamp:             Now(),
	}
}

func (s *scenarioSimulator) Run(trigger models.PredictionTrigger, inputs models.ScenarioInputs) (*models.PredictionRun, error) {
	if err := s.Validate(inputs); err != nil {
		return nil, err
	}

	predictions := make([]models.ModelPrediction, 0, len(Models))
	for _, m := range Models {
		predictions = append(predictions, s.Predict(m, inputs))
	}
	consensus := Consensus(predictions)
	metricPredictionRunsTotal.WithLabelValues(string(trigger)).Inc()
	metricConsensusEcoScore.Set(float64(consensus.EcoScore))

	return &models.PredictionRun{
		RunID:       ulid.NewULID(),
		Trigger:     trigger,
		Inputs:      inputs,
		Predictions: predictions,
		Consensus:   consensus,
		Vehicle:     Summarize(consensus),
		CreatedAt:   Now(),
	}, nil
}

// draw takes the jitter and the confidence from the source in that order.
func (s *scenarioSimulator) draw() (jitter, confidence float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	jitter = jitterMin + s.rng.Float64()*jitterSpan
	confidence = confidenceMin + s.rng.Float64()*confidenceSpan
	return jitter, confidence
}

// BaseScore is the deterministic eco score before model jitter.
func BaseScore(inputs models.ScenarioInputs) float64 {
	rpmPenalty := math.Max(0, (inputs.RPM-2000)/100)
	speedPenalty := math.Max(0, (inputs.Speed-80)/5)
	accelPenalty := math.Abs(inputs.AccelerationX) * 10
	return math.Max(0, 100-rpmPenalty-speedPenalty-accelPenalty)
}

// AlarmLevel maps an eco score to an alarm level, 0 (normal) to 5 (worst).
func AlarmLevel(score float64) int {
	switch {
	case score >= 80:
		return 0
	case score >= 60:
		return 1
	case score >= 40:
		return 2
	case score >= 25:
		return 3
	case score >= 10:
		return 4
	default:
		return 5
	}
}

// Recommend returns the actions of the matching rules, in rule order, capped at MaxRecommendations.
func Recommend(rules []Rule, inputs models.ScenarioInputs) []string {
	features := Features(inputs)
	out := make([]string, 0, MaxRecommendations)
	for _, r := range rules {
		if len(out) == MaxRecommendations {
			break
		}
		if r.Evaluate(features) {
			out = append(out, r.Then.Action)
		}
	}
	return out
}

// Consensus averages the rounded scores and picks the most frequent alarm level.
// On a frequency tie the level of the last tied prediction in model order wins.
func Consensus(predictions []models.ModelPrediction) models.Consensus {
	if len(predictions) == 0 {
		return models.Consensus{}
	}

	sum := 0
	freq := make(map[int]int)
	for _, p := range predictions {
		sum += p.EcoScore
		freq[p.AlarmLevel]++
	}

	level, best := 0, 0
	for _, p := range predictions {
		if freq[p.AlarmLevel] >= best {
			level, best = p.AlarmLevel, freq[p.AlarmLevel]
		}
	}

	return models.Consensus{
		EcoScore:   int(formats.Round(float64(sum) / float64(len(predictions)))),
		AlarmLevel: level,
		ModelCount: len(predictions),
	}
}

// Summarize derives the vehicle card from a consensus.
func Summarize(c models.Consensus) models.VehicleSummary {
	avg := float64(c.EcoScore)
	return models.VehicleSummary{
		EcoScore:       c.EcoScore,
		CurrentAlarm:   c.AlarmLevel,
		FuelEfficiency: 10 + avg/100*5,
		CO2Saved:       avg / 100 * 6,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
