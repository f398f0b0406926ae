package ingestors

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/loggers"
)

const (
	ColumnVariable   = "variable"
	ColumnAlarmClass = "alarmClass"
	ColumnTimestamp  = "timestamp"
	ColumnValue      = "value"
)

var requiredColumns = []string{ColumnVariable, ColumnAlarmClass, ColumnTimestamp, ColumnValue}

// timestampLayouts are tried in order. Layouts without a zone parse as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseError reports a document that could not be turned into records at all.
// Field-level problems and malformed data rows never produce a ParseError.
type ParseError struct {
	Line   int
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("csv parse error at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("csv parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	// Parse reads a header-driven CSV document into records.
	// On a *ParseError no records are returned.
	Parse(ctx context.Context, r io.Reader) ([]*models.TelemetryRecord, error)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return &recordParser{}
}

// ParseRecords parses r with the default parser.
func ParseRecords(r io.Reader) ([]*models.TelemetryRecord, error) {
	return NewRecordParser().Parse(context.Background(), r)
}

func (p *recordParser) Parse(ctx context.Context, r io.Reader) ([]*models.TelemetryRecord, error) {
	logger := loggers.Ctx(ctx)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Reason: "empty document: header row required"}
		}
		return nil, toParseError(err)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]*models.TelemetryRecord, 0)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			logger.Debug().Int(loggers.FieldLine, csvErr.Line).Err(err).Msg("malformed csv row skipped")
			continue
		}
		if err != nil {
			return nil, toParseError(err)
		}
		line, _ := reader.FieldPos(0)

		record := &models.TelemetryRecord{
			Variable:     strings.TrimSpace(cell(row, columns[ColumnVariable])),
			RawTimestamp: strings.TrimSpace(cell(row, columns[ColumnTimestamp])),
			RawValue:     strings.TrimSpace(cell(row, columns[ColumnValue])),
		}
		record.Category = models.CategoryOf(record.Variable)

		rawAlarm := strings.TrimSpace(cell(row, columns[ColumnAlarmClass]))
		alarmClass, ok := parseAlarmClass(rawAlarm)
		if !ok && rawAlarm != "" {
			logger.Debug().Int(loggers.FieldLine, line).Str("alarm_class", rawAlarm).Msg("non-integer alarm class, defaulting to 0")
		}
		record.AlarmClass = alarmClass

		if record.RawTimestamp != "" {
			record.Timestamp, record.HasTimestamp = parseTimestamp(record.RawTimestamp)
			if !record.HasTimestamp {
				logger.Debug().Int(loggers.FieldLine, line).Str("timestamp", record.RawTimestamp).Msg("unparseable timestamp")
			}
		}

		if record.RawValue != "" {
			record.Value, record.HasValue = parseValue(record.RawValue)
			if !record.HasValue {
				logger.Debug().Int(loggers.FieldLine, line).Str("value", record.RawValue).Msg("non-numeric value")
			}
		}

		records = append(records, record)
	}

	return records, nil
}

// indexColumns maps required column names to their position in the header.
func indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	columns := make(map[string]int, len(requiredColumns))
	var missing []string
	for _, name := range requiredColumns {
		idx, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		columns[name] = idx
	}
	if len(missing) > 0 {
		return nil, &ParseError{Line: 1, Reason: fmt.Sprintf("missing required column(s): %s", strings.Join(missing, ", "))}
	}
	return columns, nil
}

func toParseError(err error) *ParseError {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Reason: csvErr.Err.Error(), Err: err}
	}
	return &ParseError{Reason: err.Error(), Err: err}
}

// cell returns the value at idx, or "" when the row is shorter than the header.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// parseAlarmClass accepts integers and integral floats such as "3.0".
func parseAlarmClass(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func parseValue(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseTimestamp(s string) (time.Time, bool) {
	if isDigits(s) {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
