package aggregators

import (
	"time"

	"telemetry-dashboard/internal/models"
)

// DemoNotice is shown whenever the dashboard falls back to placeholder data.
const DemoNotice = "data file unavailable, using demo data"

// DemoPointsLabel describes the demo dataset in the assistant digest.
const DemoPointsLabel = "demo data (80,000+ simulated points)"

// demoUniqueVariables is the distinct-variable count of the reference fleet export.
const demoUniqueVariables = 51

var demoAlarmCounts = map[int]int64{
	0: 43084,
	1: 13539,
	2: 8306,
	3: 5480,
	4: 7337,
	5: 5723,
}

var demoVariables = []struct {
	name  string
	count int64
}{
	{"EXTERNAL BATTERY", 9625},
	{"TOWING", 6653},
	{"IGNITION_STATUS", 6304},
	{"ACCELERATION X", 5046},
	{"ENGINE RPM", 4514},
	{"Vehicle speed", 3803},
	{"ENGINE LOAD", 2290},
}

// DemoStatistics returns the placeholder statistics. A fresh value is built per call.
func DemoStatistics() *models.AggregateStatistics {
	stats := models.NewEmptyAggregateStatistics()
	for class, count := range demoAlarmCounts {
		stats.AlarmClassCounts[class] = count
		stats.TotalRecords += count
	}
	for _, v := range demoVariables {
		stats.VariableCounts[v.name] = v.count
		stats.VariableOrder = append(stats.VariableOrder, v.name)
	}
	stats.UniqueVariables = demoUniqueVariables
	stats.Measures = models.MeasureCounts{
		Battery:     9625,
		RPM:         4514,
		Speed:       3803,
		Temperature: 2100,
	}
	return stats
}

// NewDemoDataset assembles the placeholder snapshot used when no CSV could be loaded.
func NewDemoDataset(loadedAt time.Time) *models.Dataset {
	return &models.Dataset{
		Source:     models.DatasetSourceDemo,
		Records:    []*models.TelemetryRecord{},
		Statistics: DemoStatistics(),
		TimeSeries: DemoTimeSeries(),
		Notice:     DemoNotice,
		LoadedAt:   loadedAt,
	}
}
