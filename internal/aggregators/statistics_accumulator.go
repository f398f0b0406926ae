package aggregators

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/formats"
)

const (
	// TopVariablesLimit is the number of bars in the top-variables chart.
	TopVariablesLimit = 10

	maxDisplayNameLen   = 25
	truncatedNameLen    = 22
	unknownAlarmColor   = "#6b7280"
	unknownAlarmSummary = "unclassified alarm"
)

var (
	alarmColors = []string{"#10b981", "#3b82f6", "#f59e0b", "#ef4444", "#dc2626", "#991b1b"}

	alarmDescriptions = []string{
		"normal driving",
		"harsh braking",
		"harsh acceleration",
		"dangerous cornering",
		"overspeed",
		"prolonged idling",
	}
)

//go:generate mockgen -source=statistics_accumulator.go -destination=./mocks/statistics_accumulator_mock.go -package=mocks
type StatisticsAccumulator interface {
	// Compute folds every record into a fresh AggregateStatistics in one pass.
	Compute(records []*models.TelemetryRecord) *models.AggregateStatistics
}

type statisticsAccumulator struct{}

func NewStatisticsAccumulator() StatisticsAccumulator {
	return &statisticsAccumulator{}
}

func (a *statisticsAccumulator) Compute(records []*models.TelemetryRecord) *models.AggregateStatistics {
	stats := models.NewEmptyAggregateStatistics()
	var start, end time.Time
	hasTime := false

	for _, rec := range records {
		stats.TotalRecords++

		if rec.Variable != "" {
			if _, seen := stats.VariableCounts[rec.Variable]; !seen {
				stats.VariableOrder = append(stats.VariableOrder, rec.Variable)
			}
			stats.VariableCounts[rec.Variable]++
			countMeasure(&stats.Measures, rec.Variable)
		}

		stats.AlarmClassCounts[rec.AlarmClass]++

		if rec.HasTimestamp {
			if !hasTime || rec.Timestamp.Before(start) {
				start = rec.Timestamp
			}
			if !hasTime || rec.Timestamp.After(end) {
				end = rec.Timestamp
			}
			hasTime = true
		}
	}

	stats.UniqueVariables = len(stats.VariableOrder)
	if hasTime {
		stats.StartTime = &start
		stats.EndTime = &end
	}
	return stats
}

// countMeasure applies the detail-card matching rules. Matching is case sensitive;
// "Vehicle speed" is the one mixed-case speed variable the fleet emits.
func countMeasure(m *models.MeasureCounts, variable string) {
	if strings.Contains(variable, "BATTERY") {
		m.Battery++
	}
	if strings.Contains(variable, "RPM") {
		m.RPM++
	}
	if strings.Contains(variable, "SPEED") || variable == "Vehicle speed" {
		m.Speed++
	}
	if strings.Contains(variable, "TEMP") {
		m.Temperature++
	}
}

// TopVariables returns the n most frequent variables, ties kept in first-seen order.
func TopVariables(stats *models.AggregateStatistics, n int) []models.VariableCount {
	if stats == nil || n <= 0 {
		return []models.VariableCount{}
	}

	order := slices.Clone(stats.VariableOrder)
	slices.SortStableFunc(order, func(a, b string) int {
		ca, cb := stats.VariableCounts[a], stats.VariableCounts[b]
		switch {
		case ca > cb:
			return -1
		case ca < cb:
			return 1
		default:
			return 0
		}
	})
	if len(order) > n {
		order = order[:n]
	}

	top := make([]models.VariableCount, 0, len(order))
	for _, variable := range order {
		top = append(top, models.VariableCount{
			Variable: DisplayName(variable),
			FullName: variable,
			Count:    stats.VariableCounts[variable],
			Category: models.CategoryOf(variable),
		})
	}
	return top
}

// DisplayName shortens long variable names for chart axes.
func DisplayName(variable string) string {
	runes := []rune(variable)
	if len(runes) > maxDisplayNameLen {
		return string(runes[:truncatedNameLen]) + "..."
	}
	return variable
}

// CriticalCount is the number of records whose alarm class is critical.
func CriticalCount(stats *models.AggregateStatistics) int64 {
	if stats == nil {
		return 0
	}
	var n int64
	for class, count := range stats.AlarmClassCounts {
		if class >= models.CriticalAlarmClass {
			n += count
		}
	}
	return n
}

// CriticalFraction is the critical share of all records as a percentage rounded to one decimal.
func CriticalFraction(stats *models.AggregateStatistics) float64 {
	if stats == nil || stats.TotalRecords == 0 {
		return 0
	}
	pct := float64(CriticalCount(stats)) / float64(stats.TotalRecords) * 100
	return formats.RoundTenth(pct)
}

// AlarmDistribution returns one slice per alarm class present, ordered by class.
func AlarmDistribution(stats *models.AggregateStatistics) []models.AlarmSlice {
	if stats == nil {
		return []models.AlarmSlice{}
	}

	classes := make([]int, 0, len(stats.AlarmClassCounts))
	for class := range stats.AlarmClassCounts {
		classes = append(classes, class)
	}
	slices.Sort(classes)

	dist := make([]models.AlarmSlice, 0, len(classes))
	for _, class := range classes {
		dist = append(dist, models.AlarmSlice{
			AlarmClass:  class,
			Name:        AlarmName(class),
			Description: AlarmDescription(class),
			Count:       stats.AlarmClassCounts[class],
			Color:       AlarmColor(class),
		})
	}
	return dist
}

func AlarmName(class int) string {
	if class == 0 {
		return "Normal"
	}
	return fmt.Sprintf("Level %d", class)
}

func AlarmDescription(class int) string {
	if class >= 0 && class < len(alarmDescriptions) {
		return alarmDescriptions[class]
	}
	return unknownAlarmSummary
}

func AlarmColor(class int) string {
	if class >= 0 && class < len(alarmColors) {
		return alarmColors[class]
	}
	return unknownAlarmColor
}
