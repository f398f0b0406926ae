package models

import (
	"strings"
	"time"
)

// TelemetryRecord is one parsed CSV row. Records are immutable once parsed.
type TelemetryRecord struct {
	Variable     string           `json:"variable"`
	Category     VariableCategory `json:"category"`
	AlarmClass   int              `json:"alarmClass"`
	Timestamp    time.Time        `json:"timestamp"`
	HasTimestamp bool             `json:"hasTimestamp"`
	RawTimestamp string           `json:"rawTimestamp,omitempty"`
	Value        float64          `json:"value"`
	HasValue     bool             `json:"hasValue"`
	RawValue     string           `json:"rawValue,omitempty"`
}

// VariableCategory groups sensor variables for chart colouring.
type VariableCategory string

const (
	CategoryBattery     VariableCategory = "battery"
	CategoryEngine      VariableCategory = "engine"
	CategoryDriving     VariableCategory = "driving"
	CategoryTemperature VariableCategory = "temperature"
	CategoryStatus      VariableCategory = "status"
)

// AllCategories lists every category in legend order.
var AllCategories = []VariableCategory{
	CategoryBattery,
	CategoryEngine,
	CategoryDriving,
	CategoryTemperature,
	CategoryStatus,
}

// CategoryOf maps a raw variable name to its category. The mapping is total:
// anything not recognised is a status variable.
func CategoryOf(variable string) VariableCategory {
	upper := strings.ToUpper(variable)
	switch {
	case strings.Contains(upper, "BATTERY"):
		return CategoryBattery
	case strings.Contains(upper, "ENGINE"), strings.Contains(upper, "RPM"):
		return CategoryEngine
	case strings.Contains(upper, "SPEED"), strings.Contains(upper, "ACCELER"):
		return CategoryDriving
	case strings.Contains(upper, "TEMP"):
		return CategoryTemperature
	default:
		return CategoryStatus
	}
}

func (c VariableCategory) Color() string {
	switch c {
	case CategoryBattery:
		return "#10b981"
	case CategoryEngine:
		return "#ef4444"
	case CategoryDriving:
		return "#3b82f6"
	case CategoryTemperature:
		return "#f59e0b"
	default:
		return "#8b5cf6"
	}
}

func (c VariableCategory) Label() string {
	switch c {
	case CategoryBattery:
		return "Battery"
	case CategoryEngine:
		return "Engine"
	case CategoryDriving:
		return "Driving"
	case CategoryTemperature:
		return "Temperature"
	default:
		return "Status"
	}
}
