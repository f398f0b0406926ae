package ingestors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"telemetry-dashboard/internal/aggregators"
	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/formats"
	"telemetry-dashboard/internal/shared/loggers"
	"telemetry-dashboard/internal/stores"
)

const emptyDatasetNotice = "data file contains no records"

//go:generate mockgen -source=dataset_loader.go -destination=./mocks/dataset_loader_mock.go -package=mocks
type DatasetLoader interface {
	// Load reads the configured CSV and stores the resulting snapshot. An unreadable
	// or malformed file stores the demo dataset instead; only store failures are errors.
	Load(ctx context.Context) (*models.Dataset, error)
	// Replace validates an uploaded CSV, persists it and swaps in its snapshot.
	Replace(ctx context.Context, r io.Reader) (*models.Dataset, error)
}

type datasetLoader struct {
	parser       RecordParser
	accumulator  aggregators.StatisticsAccumulator
	sampler      aggregators.TimeSeriesSampler
	csvStore     stores.TelemetryCSVStore
	datasetStore stores.DatasetStore
}

func NewDatasetLoader(
	parser RecordParser,
	accumulator aggregators.StatisticsAccumulator,
	sampler aggregators.TimeSeriesSampler,
	csvStore stores.TelemetryCSVStore,
	datasetStore stores.DatasetStore,
) DatasetLoader {
	return &datasetLoader{
		parser:       parser,
		accumulator:  accumulator,
		sampler:      sampler,
		csvStore:     csvStore,
		datasetStore: datasetStore,
	}
}

// Now is the clock used for LoadedAt.
var Now = func() time.Time {
	return time.Now().UTC()
}

func (l *datasetLoader) Load(ctx context.Context) (*models.Dataset, error) {
	logger := loggers.Ctx(ctx)
	started := time.Now()

	dataset, err := l.readDataset(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry csv unavailable, falling back to demo data")
		dataset = aggregators.NewDemoDataset(Now())
	}

	if err := l.datasetStore.Set(ctx, dataset); err != nil {
		return nil, errInternalDatasetStoreFailed(err)
	}

	observeLoad(dataset, started)
	logger.Info().
		Str(loggers.FieldSource, string(dataset.Source)).
		Int64("total_records", dataset.Statistics.TotalRecords).
		Dur(loggers.FieldDuration, time.Since(started)).
		Msg("dataset loaded")
	return dataset, nil
}

func (l *datasetLoader) Replace(ctx context.Context, r io.Reader) (*models.Dataset, error) {
	logger := loggers.Ctx(ctx)
	started := time.Now()

	if r == nil {
		return nil, errInvalidDatasetUpload("empty request body", nil)
	}
	buf, err := io.ReadAll(io.LimitReader(r, stores.MaxTelemetryCSVBytes+1))
	if err != nil {
		return nil, errInvalidDatasetUpload("failed to read request body", err)
	}
	if len(buf) > stores.MaxTelemetryCSVBytes {
		return nil, errInvalidDatasetUpload(fmt.Sprintf("csv too large: must be <= %d bytes", stores.MaxTelemetryCSVBytes), nil)
	}

	records, err := l.parser.Parse(ctx, bytes.NewReader(buf))
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return nil, errInvalidDatasetUpload(parseErr.Error(), err)
		}
		return nil, errInvalidDatasetUpload("failed to parse csv", err)
	}
	if len(records) == 0 {
		return nil, errInvalidDatasetUpload("csv has no data rows", nil)
	}

	if err := l.csvStore.Replace(ctx, bytes.NewReader(buf)); err != nil {
		if errors.Is(err, stores.ErrTelemetryCSVTooLarge) {
			return nil, errInvalidDatasetUpload("csv too large", err)
		}
		return nil, errInternalTelemetryCSVStoreFailed(err)
	}

	dataset := l.buildDataset(records)
	if err := l.datasetStore.Set(ctx, dataset); err != nil {
		return nil, errInternalDatasetStoreFailed(err)
	}

	observeLoad(dataset, started)
	logger.Info().Int64("total_records", dataset.Statistics.TotalRecords).Msg("dataset replaced")
	return dataset, nil
}

// readDataset returns an error for every condition that selects the demo dataset.
// A header-only file is a valid, empty dataset.
func (l *datasetLoader) readDataset(ctx context.Context) (*models.Dataset, error) {
	rc, err := l.csvStore.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := l.parser.Parse(ctx, rc)
	if err != nil {
		return nil, err
	}
	dataset := l.buildDataset(records)
	if len(records) == 0 {
		dataset.Notice = emptyDatasetNotice
	}
	return dataset, nil
}

func (l *datasetLoader) buildDataset(records []*models.TelemetryRecord) *models.Dataset {
	stats := l.accumulator.Compute(records)
	return &models.Dataset{
		Source:     models.DatasetSourceCSV,
		Records:    records,
		Statistics: stats,
		TimeSeries: l.sampler.Sample(records),
		Notice:     LoadNotice(stats),
		LoadedAt:   Now(),
	}
}

// LoadNotice summarises a freshly loaded dataset for the chat greeting.
func LoadNotice(stats *models.AggregateStatistics) string {
	return fmt.Sprintf("Data loaded: %s records analysed, %s unique variables, %s critical alarms (%s), period %s - %s.",
		formats.Count(stats.TotalRecords),
		formats.Count(int64(stats.UniqueVariables)),
		formats.Count(aggregators.CriticalCount(stats)),
		formats.Percent(aggregators.CriticalFraction(stats)),
		formats.Date(stats.StartTime),
		formats.Date(stats.EndTime),
	)
}

func observeLoad(dataset *models.Dataset, started time.Time) {
	metricDatasetLoadDuration.WithLabelValues(string(dataset.Source)).Observe(time.Since(started).Seconds())
	metricDatasetRecords.Set(float64(dataset.Statistics.TotalRecords))
}
