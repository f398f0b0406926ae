package models

import "time"

// CriticalAlarmClass is the lowest alarm class counted as critical.
const CriticalAlarmClass = 3

// AggregateStatistics is the result of one accumulation pass over a record set.
// It is recomputed wholesale on every load and never updated incrementally.
//
// Invariants:
//   - the alarm class counts sum to TotalRecords
//   - the variable counts sum to at most TotalRecords (rows without a variable are excluded)
type AggregateStatistics struct {
	TotalRecords     int64            `json:"totalRecords"`
	UniqueVariables  int              `json:"uniqueVariables"`
	VariableCounts   map[string]int64 `json:"variableCounts"`
	VariableOrder    []string         `json:"-"`
	AlarmClassCounts map[int]int64    `json:"alarmClassCounts"`
	StartTime        *time.Time       `json:"startTime,omitempty"`
	EndTime          *time.Time       `json:"endTime,omitempty"`
	Measures         MeasureCounts    `json:"measures"`
}

// MeasureCounts counts measurements per headline sensor family.
type MeasureCounts struct {
	Battery     int64 `json:"battery"`
	RPM         int64 `json:"rpm"`
	Speed       int64 `json:"speed"`
	Temperature int64 `json:"temperature"`
}

func NewEmptyAggregateStatistics() *AggregateStatistics {
	return &AggregateStatistics{
		VariableCounts:   make(map[string]int64),
		VariableOrder:    make([]string, 0),
		AlarmClassCounts: make(map[int]int64),
	}
}

// VariableCount is one entry of the top-variables chart.
type VariableCount struct {
	Variable string           `json:"variable"`
	FullName string           `json:"fullName"`
	Count    int64            `json:"count"`
	Category VariableCategory `json:"category"`
}

// AlarmSlice is one entry of the alarm distribution chart.
type AlarmSlice struct {
	AlarmClass  int    `json:"alarmClass"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int64  `json:"count"`
	Color       string `json:"color"`
}
