package models

import (
	"fmt"
	"strings"
	"time"
)

// TimeRange is the dashboard time filter. Bounded ranges are anchored on the
// latest timestamp of the dataset, not on the wall clock.
type TimeRange string

const (
	TimeRangeHour  TimeRange = "1h"
	TimeRangeDay   TimeRange = "24h"
	TimeRangeWeek  TimeRange = "7d"
	TimeRangeMonth TimeRange = "30d"
	TimeRangeAll   TimeRange = "all"
)

const DefaultTimeRange = TimeRangeAll

// TimeRanges lists the selectable ranges in display order.
var TimeRanges = []TimeRange{TimeRangeHour, TimeRangeDay, TimeRangeWeek, TimeRangeMonth, TimeRangeAll}

var timeRangeAliases = map[string]TimeRange{
	"1h":   TimeRangeHour,
	"24h":  TimeRangeDay,
	"7d":   TimeRangeWeek,
	"7j":   TimeRangeWeek,
	"30d":  TimeRangeMonth,
	"30j":  TimeRangeMonth,
	"all":  TimeRangeAll,
	"tout": TimeRangeAll,
}

// NewTimeRangeFromString parses a range code. An empty string selects DefaultTimeRange.
func NewTimeRangeFromString(s string) (TimeRange, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return DefaultTimeRange, nil
	}
	if r, ok := timeRangeAliases[key]; ok {
		return r, nil
	}
	return "", fmt.Errorf("invalid time range: %q", s)
}

// Duration returns the window length; TimeRangeAll has no bound and returns 0.
func (r TimeRange) Duration() time.Duration {
	switch r {
	case TimeRangeHour:
		return time.Hour
	case TimeRangeDay:
		return 24 * time.Hour
	case TimeRangeWeek:
		return 7 * 24 * time.Hour
	case TimeRangeMonth:
		return 30 * 24 * time.Hour
	case TimeRangeAll:
		return 0
	default:
		panic(fmt.Sprintf("invalid TimeRange: %q", r))
	}
}

func (r TimeRange) IsBounded() bool {
	return r.Duration() > 0
}

// WindowStart returns the inclusive lower bound of the range ending at end.
func (r TimeRange) WindowStart(end time.Time) time.Time {
	return end.Add(-r.Duration())
}

func (r TimeRange) Label() string {
	switch r {
	case TimeRangeAll:
		return "All"
	default:
		return string(r)
	}
}
