package assistants

import (
	"strings"
	"testing"
	"time"

	"telemetry-dashboard/internal/aggregators"
	"telemetry-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func csvDataset() *models.Dataset {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 18, 0, 0, 0, time.UTC)
	stats := models.NewEmptyAggregateStatistics()
	stats.TotalRecords = 12500
	stats.UniqueVariables = 4
	stats.StartTime, stats.EndTime = &start, &end
	stats.AlarmClassCounts = map[int]int64{0: 10000, 3: 1500, 5: 1000}
	for _, v := range []struct {
		name  string
		count int64
	}{
		{"EXTERNAL BATTERY", 6000},
		{"ENGINE RPM", 4000},
		{"Vehicle speed", 2000},
		{"TOWING", 500},
	} {
		stats.VariableOrder = append(stats.VariableOrder, v.name)
		stats.VariableCounts[v.name] = v.count
	}
	stats.Measures = models.MeasureCounts{Battery: 6000, RPM: 4000, Speed: 2000}
	return &models.Dataset{Source: models.DatasetSourceCSV, Statistics: stats}
}

func TestDigest_CSV(t *testing.T) {
	t.Parallel()

	digest := Digest(csvDataset())

	assert.Equal(t, strings.Join([]string{
		"Context of the analysed data:",
		"- Total records: 12,500",
		"- Unique variables detected: 4",
		"- Analysis period: 01/05/2024 - 03/05/2024",
		"- Alarm distribution: Normal: 10,000, Level 3: 1,500, Level 5: 1,000",
		"- Top 3 variables: EXTERNAL BATTERY (6,000 measures), ENGINE RPM (4,000 measures), Vehicle speed (2,000 measures)",
	}, "\n"), digest)
}

func TestDigest_Demo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "demo data (80,000+ simulated points)", Digest(aggregators.NewDemoDataset(time.Now())))
	assert.Equal(t, "demo data (80,000+ simulated points)", Digest(nil))
}

func TestSystemPrompt_EmbedsDigest(t *testing.T) {
	t.Parallel()

	prompt := SystemPrompt(csvDataset())
	assert.True(t, strings.HasPrefix(prompt, "You are an expert assistant in eco-driving"))
	assert.Contains(t, prompt, "- Total records: 12,500")
	assert.True(t, strings.HasSuffix(prompt, "based on the data provided."))
}

func TestFallbackReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		stats     *models.AggregateStatistics
		wantLines []string
	}{
		{
			name:  "csv statistics",
			stats: csvDataset().Statistics,
			wantLines: []string{
				"- 12,500 records in total",
				"- 2,500 critical alarms (levels 3-5)",
				"- 6,000 battery measures",
				"- 4,000 engine RPM measures",
			},
		},
		{
			name:  "demo statistics",
			stats: aggregators.DemoStatistics(),
			wantLines: []string{
				"- 83,469 records in total",
				"- 18,540 critical alarms (levels 3-5)",
				"- 9,625 battery measures",
				"- 4,514 engine RPM measures",
			},
		},
		{
			name:      "no statistics",
			stats:     nil,
			wantLines: []string{"- 0 records in total"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reply := FallbackReply(tt.stats)
			assert.True(t, strings.HasPrefix(reply, "The assistant API is unreachable."))
			for _, line := range tt.wantLines {
				assert.Contains(t, reply, line)
			}
			assert.Contains(t, reply, "1. Keep engine speed between 1500 and 2500 RPM")
			assert.Contains(t, reply, "2. Anticipate stops")
			assert.Contains(t, reply, "3. Check tyre pressure")
		})
	}
}
