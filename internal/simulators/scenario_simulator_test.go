package simulators

import (
	"testing"
	"time"

	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/svcerrors"
	"telemetry-dashboard/internal/shared/ulid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand cycles through vals.
type fixedRand struct {
	vals []float64
	i    int
}

func (r *fixedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func mustDefaultRules(t *testing.T) []Rule {
	t.Helper()
	rules, err := DefaultRules()
	require.NoError(t, err)
	return rules
}

func TestBaseScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		inputs models.ScenarioInputs
		want   float64
	}{
		{name: "defaults", inputs: models.DefaultScenarioInputs(), want: 98.5},
		{name: "below every threshold", inputs: models.ScenarioInputs{RPM: 2000, Speed: 80}, want: 100},
		{name: "moderate", inputs: models.ScenarioInputs{RPM: 3000, Speed: 100, AccelerationX: 0.5}, want: 81},
		{name: "negative acceleration counts", inputs: models.ScenarioInputs{RPM: 1500, Speed: 50, AccelerationX: -1}, want: 90},
		{name: "aggressive", inputs: models.ScenarioInputs{RPM: 4800, Speed: 150, AccelerationX: 2}, want: 38},
		{name: "floored at zero", inputs: models.ScenarioInputs{RPM: 20000, Speed: 80}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, BaseScore(tt.inputs), 1e-9)
		})
	}
}

func TestAlarmLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  int
	}{
		{100, 0},
		{80, 0},
		{79.99, 1},
		{60, 1},
		{59.5, 2},
		{40, 2},
		{25, 3},
		{24.9, 4},
		{10, 4},
		{9.99, 5},
		{0, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AlarmLevel(tt.score), "score %v", tt.score)
	}
}

func TestScenarioSimulator_Predict(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	restore := Now
	Now = func() time.Time { return now }
	t.Cleanup(func() { Now = restore })

	sim := NewScenarioSimulator(mustDefaultRules(t), &fixedRand{vals: []float64{0.5}})
	got := sim.Predict(Models[0], models.DefaultScenarioInputs())

	assert.Equal(t, "random_forest", got.ModelID)
	assert.Equal(t, "Random Forest", got.ModelName)
	// jitter 1.0 keeps the base score of 98.5
	assert.Equal(t, 99, got.EcoScore)
	assert.Equal(t, 0, got.AlarmLevel)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)
	assert.InDelta(t, 14.775, got.FuelEfficiencyGain, 1e-9)
	assert.InDelta(t, 7.88, got.CO2ReductionPotential, 1e-9)
	assert.Empty(t, got.Recommendations)
	assert.Equal(t, map[string]float64{"rpm": 0.35, "speed": 0.25, "acceleration": 0.20, "engine_load": 0.15, "battery": 0.05}, got.FeatureImportance)
	assert.Equal(t, now, got.Timestamp)
}

func TestScenarioSimulator_Predict_ScoreClampedAndBounded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		draws          []float64
		inputs         models.ScenarioInputs
		wantScore      int
		wantAlarm      int
		wantConfidence float64
	}{
		{
			name:           "upper jitter clamps to 100",
			draws:          []float64{0.999, 0.999},
			inputs:         models.DefaultScenarioInputs(),
			wantScore:      100,
			wantAlarm:      0,
			wantConfidence: 0.9498,
		},
		{
			name:           "lower jitter",
			draws:          []float64{0, 0},
			inputs:         models.ScenarioInputs{RPM: 3000, Speed: 100, AccelerationX: 0.5},
			wantScore:      65, // 81 * 0.8 = 64.8
			wantAlarm:      1,
			wantConfidence: 0.75,
		},
		{
			name:           "alarm uses the unrounded score",
			draws:          []float64{0, 0},
			inputs:         models.ScenarioInputs{RPM: 2000, Speed: 80, AccelerationX: 0.05},
			wantScore:      80, // 99.5 * 0.8 = 79.6
			wantAlarm:      1,
			wantConfidence: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sim := NewScenarioSimulator(nil, &fixedRand{vals: tt.draws})
			got := sim.Predict(Models[1], tt.inputs)
			assert.Equal(t, tt.wantScore, got.EcoScore)
			assert.Equal(t, tt.wantAlarm, got.AlarmLevel)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
			assert.GreaterOrEqual(t, got.EcoScore, 0)
			assert.LessOrEqual(t, got.EcoScore, 100)
		})
	}
}

func TestScenarioSimulator_Predict_RecommendationsCapped(t *testing.T) {
	t.Parallel()

	sim := NewScenarioSimulator(mustDefaultRules(t), &fixedRand{vals: []float64{0.5}})
	got := sim.Predict(Models[2], models.ScenarioInputs{RPM: 3000, Speed: 100, AccelerationX: -0.5, EngineLoad: 90})

	assert.Equal(t, []string{"Reduce engine speed (RPM)", "Reduce speed", "Smooth out acceleration"}, got.Recommendations)
}

func TestScenarioSimulator_Predict_DefaultRandomSourceStaysInRange(t *testing.T) {
	t.Parallel()

	sim := NewScenarioSimulator(nil, nil)
	for i := 0; i < 200; i++ {
		got := sim.Predict(Models[3], models.DefaultScenarioInputs())
		assert.GreaterOrEqual(t, got.Confidence, 0.75)
		assert.Less(t, got.Confidence, 0.95)
		// 98.5 * 0.8 = 78.8
		assert.GreaterOrEqual(t, got.EcoScore, 79)
		assert.LessOrEqual(t, got.EcoScore, 100)
	}
}

func TestConsensus(t *testing.T) {
	t.Parallel()

	preds := func(scores []int, alarms []int) []models.ModelPrediction {
		out := make([]models.ModelPrediction, len(scores))
		for i := range scores {
			out[i] = models.ModelPrediction{EcoScore: scores[i], AlarmLevel: alarms[i]}
		}
		return out
	}

	tests := []struct {
		name   string
		scores []int
		alarms []int
		want   models.Consensus
	}{
		{name: "clear majority", scores: []int{90, 85, 88, 70}, alarms: []int{0, 0, 0, 1}, want: models.Consensus{EcoScore: 83, AlarmLevel: 0, ModelCount: 4}},
		{name: "mean rounds half up", scores: []int{80, 81, 81, 80}, alarms: []int{0, 0, 0, 0}, want: models.Consensus{EcoScore: 81, AlarmLevel: 0, ModelCount: 4}},
		{name: "tie goes to last tied prediction", scores: []int{50, 70, 65, 45}, alarms: []int{2, 1, 1, 2}, want: models.Consensus{EcoScore: 58, AlarmLevel: 2, ModelCount: 4}},
		{name: "tie reversed", scores: []int{70, 50, 45, 65}, alarms: []int{1, 2, 2, 1}, want: models.Consensus{EcoScore: 58, AlarmLevel: 1, ModelCount: 4}},
		{name: "all distinct", scores: []int{90, 70, 50, 30}, alarms: []int{0, 1, 2, 3}, want: models.Consensus{EcoScore: 60, AlarmLevel: 3, ModelCount: 4}},
		{name: "empty", want: models.Consensus{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Consensus(preds(tt.scores, tt.alarms)))
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize(models.Consensus{EcoScore: 80, AlarmLevel: 1, ModelCount: 4})

	assert.Equal(t, 80, got.EcoScore)
	assert.Equal(t, 1, got.CurrentAlarm)
	assert.InDelta(t, 14.0, got.FuelEfficiency, 1e-9)
	assert.InDelta(t, 4.8, got.CO2Saved, 1e-9)
}

func TestScenarioSimulator_Run(t *testing.T) {
	t.Parallel()

	sim := NewScenarioSimulator(mustDefaultRules(t), &fixedRand{vals: []float64{0.5}})
	inputs := models.DefaultScenarioInputs()

	run, err := sim.Run(models.TriggerManual, inputs)
	require.NoError(t, err)

	assert.True(t, ulid.IsValid(run.RunID))
	assert.Equal(t, models.TriggerManual, run.Trigger)
	assert.Equal(t, inputs, run.Inputs)
	require.Len(t, run.Predictions, len(Models))
	for i, m := range Models {
		assert.Equal(t, m.ID, run.Predictions[i].ModelID)
		assert.Equal(t, 99, run.Predictions[i].EcoScore)
	}
	assert.Equal(t, models.Consensus{EcoScore: 99, AlarmLevel: 0, ModelCount: 4}, run.Consensus)
	assert.Equal(t, Summarize(run.Consensus), run.Vehicle)
}

func TestScenarioSimulator_Run_InvalidInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*models.ScenarioInputs)
		wantField string
	}{
		{name: "rpm below range", mutate: func(in *models.ScenarioInputs) { in.RPM = 100 }, wantField: "rpm"},
		{name: "speed above range", mutate: func(in *models.ScenarioInputs) { in.Speed = 181 }, wantField: "speed"},
		{name: "battery negative", mutate: func(in *models.ScenarioInputs) { in.Battery = -1 }, wantField: "battery"},
		{name: "acceleration out of range", mutate: func(in *models.ScenarioInputs) { in.AccelerationX = 2.5 }, wantField: "accelerationX"},
		{name: "negative distance", mutate: func(in *models.ScenarioInputs) { in.DistanceTraveled = -5 }, wantField: "distanceTraveled"},
	}

	sim := NewScenarioSimulator(nil, &fixedRand{vals: []float64{0.5}})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inputs := models.DefaultScenarioInputs()
			tt.mutate(&inputs)

			run, err := sim.Run(models.TriggerInput, inputs)
			require.Error(t, err)
			assert.Nil(t, run)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "SIM_1000", svcErr.Code)
			assert.Equal(t, 400, svcErr.HttpStatusCode)
			assert.Contains(t, svcErr.Message, tt.wantField)
		})
	}
}
