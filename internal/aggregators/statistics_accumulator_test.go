package aggregators

import (
	"strings"
	"testing"
	"time"

	"telemetry-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(variable string, alarm int, ts string, value float64) *models.TelemetryRecord {
	r := &models.TelemetryRecord{
		Variable:   variable,
		Category:   models.CategoryOf(variable),
		AlarmClass: alarm,
		Value:      value,
		HasValue:   true,
	}
	if ts != "" {
		t, err := time.Parse(time.RFC3339, ts)
		if err == nil {
			r.Timestamp, r.HasTimestamp = t, true
		}
		r.RawTimestamp = ts
	}
	return r
}

func TestStatisticsAccumulator_Compute(t *testing.T) {
	t.Parallel()

	records := []*models.TelemetryRecord{
		rec("ENGINE RPM", 0, "2024-05-01T10:00:00Z", 1800),
		rec("EXTERNAL BATTERY", 3, "2024-05-01T08:30:00Z", 12.6),
		rec("ENGINE RPM", 4, "2024-05-02T17:45:00Z", 2600),
		rec("Vehicle speed", 1, "not-a-date", 64),
		rec("", 5, "", 0),
		rec("COOLANT TEMP", 0, "2024-05-01T09:00:00Z", 82),
	}

	stats := NewStatisticsAccumulator().Compute(records)

	assert.Equal(t, int64(6), stats.TotalRecords)
	assert.Equal(t, 4, stats.UniqueVariables)
	assert.Equal(t, []string{"ENGINE RPM", "EXTERNAL BATTERY", "Vehicle speed", "COOLANT TEMP"}, stats.VariableOrder)
	assert.Equal(t, map[string]int64{"ENGINE RPM": 2, "EXTERNAL BATTERY": 1, "Vehicle speed": 1, "COOLANT TEMP": 1}, stats.VariableCounts)
	assert.Equal(t, map[int]int64{0: 2, 1: 1, 3: 1, 4: 1, 5: 1}, stats.AlarmClassCounts)

	require.NotNil(t, stats.StartTime)
	require.NotNil(t, stats.EndTime)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), *stats.StartTime)
	assert.Equal(t, time.Date(2024, 5, 2, 17, 45, 0, 0, time.UTC), *stats.EndTime)

	assert.Equal(t, models.MeasureCounts{Battery: 1, RPM: 2, Speed: 1, Temperature: 1}, stats.Measures)

	var alarmSum, varSum int64
	for _, c := range stats.AlarmClassCounts {
		alarmSum += c
	}
	for _, c := range stats.VariableCounts {
		varSum += c
	}
	assert.Equal(t, stats.TotalRecords, alarmSum)
	assert.LessOrEqual(t, varSum, stats.TotalRecords)
}

func TestStatisticsAccumulator_Compute_TwoVariableFleet(t *testing.T) {
	t.Parallel()

	records := make([]*models.TelemetryRecord, 0, 10)
	for i := 0; i < 6; i++ {
		records = append(records, rec("X", 0, "2024-05-01T10:00:00Z", 1))
	}
	for i := 0; i < 4; i++ {
		records = append(records, rec("Y", 4, "2024-05-01T11:00:00Z", 1))
	}

	stats := NewStatisticsAccumulator().Compute(records)

	assert.Equal(t, int64(10), stats.TotalRecords)
	assert.Equal(t, 2, stats.UniqueVariables)
	assert.Equal(t, map[string]int64{"X": 6, "Y": 4}, stats.VariableCounts)
	assert.Equal(t, map[int]int64{0: 6, 4: 4}, stats.AlarmClassCounts)
	assert.Equal(t, int64(4), CriticalCount(stats))
	assert.Equal(t, 40.0, CriticalFraction(stats))
}

func TestStatisticsAccumulator_Compute_Empty(t *testing.T) {
	t.Parallel()

	stats := NewStatisticsAccumulator().Compute(nil)

	assert.Zero(t, stats.TotalRecords)
	assert.Zero(t, stats.UniqueVariables)
	assert.Nil(t, stats.StartTime)
	assert.Nil(t, stats.EndTime)
	assert.Empty(t, stats.AlarmClassCounts)
	assert.Zero(t, CriticalFraction(stats))
	assert.Empty(t, TopVariables(stats, TopVariablesLimit))
}

func TestTopVariables_OrderAndTruncation(t *testing.T) {
	t.Parallel()

	longName := "REAR LEFT TYRE PRESSURE SENSOR STATUS"
	stats := models.NewEmptyAggregateStatistics()
	for _, v := range []struct {
		name  string
		count int64
	}{
		{"TOWING", 5},
		{longName, 9},
		{"IGNITION_STATUS", 5},
		{"EXTERNAL BATTERY", 12},
		{"ENGINE LOAD", 1},
	} {
		stats.VariableOrder = append(stats.VariableOrder, v.name)
		stats.VariableCounts[v.name] = v.count
	}

	top := TopVariables(stats, 4)
	require.Len(t, top, 4)

	assert.Equal(t, "EXTERNAL BATTERY", top[0].Variable)
	assert.Equal(t, models.CategoryBattery, top[0].Category)

	assert.Equal(t, "REAR LEFT TYRE PRESSUR...", top[1].Variable)
	assert.Equal(t, longName, top[1].FullName)
	assert.Equal(t, int64(9), top[1].Count)

	// ties keep first-seen order
	assert.Equal(t, "TOWING", top[2].Variable)
	assert.Equal(t, "IGNITION_STATUS", top[3].Variable)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"ENGINE RPM", "ENGINE RPM"},
		{strings.Repeat("A", 25), strings.Repeat("A", 25)},
		{strings.Repeat("A", 26), strings.Repeat("A", 22) + "..."},
		{strings.Repeat("É", 30), strings.Repeat("É", 22) + "..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.in))
	}
}

func TestCriticalFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		alarms       map[int]int64
		wantCount    int64
		wantFraction float64
	}{
		{name: "no records", alarms: map[int]int64{}, wantCount: 0, wantFraction: 0},
		{name: "one in three", alarms: map[int]int64{0: 2, 3: 1}, wantCount: 1, wantFraction: 33.3},
		{name: "levels three to five", alarms: map[int]int64{0: 4, 2: 2, 3: 1, 4: 1, 5: 2}, wantCount: 4, wantFraction: 40},
		{name: "demo distribution", alarms: demoAlarmCounts, wantCount: 18540, wantFraction: 22.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stats := models.NewEmptyAggregateStatistics()
			for class, count := range tt.alarms {
				stats.AlarmClassCounts[class] = count
				stats.TotalRecords += count
			}
			assert.Equal(t, tt.wantCount, CriticalCount(stats))
			assert.InDelta(t, tt.wantFraction, CriticalFraction(stats), 1e-9)
		})
	}
}

func TestAlarmDistribution(t *testing.T) {
	t.Parallel()

	stats := models.NewEmptyAggregateStatistics()
	stats.AlarmClassCounts = map[int]int64{7: 1, 3: 4, 0: 10, 1: 2}

	dist := AlarmDistribution(stats)
	require.Len(t, dist, 4)

	assert.Equal(t, models.AlarmSlice{AlarmClass: 0, Name: "Normal", Description: "normal driving", Count: 10, Color: "#10b981"}, dist[0])
	assert.Equal(t, models.AlarmSlice{AlarmClass: 1, Name: "Level 1", Description: "harsh braking", Count: 2, Color: "#3b82f6"}, dist[1])
	assert.Equal(t, models.AlarmSlice{AlarmClass: 3, Name: "Level 3", Description: "dangerous cornering", Count: 4, Color: "#ef4444"}, dist[2])
	assert.Equal(t, models.AlarmSlice{AlarmClass: 7, Name: "Level 7", Description: "unclassified alarm", Count: 1, Color: "#6b7280"}, dist[3])
}

func TestDemoStatistics(t *testing.T) {
	t.Parallel()

	stats := DemoStatistics()
	assert.Equal(t, int64(83469), stats.TotalRecords)
	assert.Equal(t, 51, stats.UniqueVariables)
	assert.Equal(t, int64(9625), stats.Measures.Battery)
	assert.Equal(t, int64(2100), stats.Measures.Temperature)

	top := TopVariables(stats, TopVariablesLimit)
	require.Len(t, top, 7)
	assert.Equal(t, "EXTERNAL BATTERY", top[0].FullName)
	assert.Equal(t, "ENGINE LOAD", top[6].FullName)

	stats.AlarmClassCounts[0] = 0
	assert.Equal(t, int64(43084), DemoStatistics().AlarmClassCounts[0], "each call returns a fresh value")
}
