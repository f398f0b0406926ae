package aggregators

import (
	"context"
	"errors"
	"time"

	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/loggers"
	"telemetry-dashboard/internal/stores"
)

// PeriodLayout formats the dashboard period (day first).
const PeriodLayout = "02/01/2006 15:04"

//go:generate mockgen -source=dashboard_service.go -destination=./mocks/dashboard_service_mock.go -package=mocks
type DashboardService interface {
	// View builds the dashboard for a time range code such as "24h" or "all".
	View(ctx context.Context, timeRange string) (*models.DashboardView, error)
	// Statistics returns the statistics of the whole loaded dataset.
	Statistics(ctx context.Context) (*models.AggregateStatistics, error)
}

type dashboardService struct {
	datasetStore stores.DatasetStore
	accumulator  StatisticsAccumulator
	sampler      TimeSeriesSampler
}

func NewDashboardService(datasetStore stores.DatasetStore, accumulator StatisticsAccumulator, sampler TimeSeriesSampler) DashboardService {
	return &dashboardService{datasetStore: datasetStore, accumulator: accumulator, sampler: sampler}
}

func (s *dashboardService) View(ctx context.Context, timeRange string) (*models.DashboardView, error) {
	logger := loggers.Ctx(ctx)

	tr, err := models.NewTimeRangeFromString(timeRange)
	if err != nil {
		return nil, errInvalidTimeRange(err)
	}

	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	stats, series := dataset.Statistics, dataset.TimeSeries
	if tr.IsBounded() && !dataset.IsDemo() && stats.EndTime != nil {
		subset := filterWindow(dataset.Records, tr.WindowStart(*stats.EndTime), *stats.EndTime)
		stats = s.accumulator.Compute(subset)
		series = s.sampler.Sample(subset)
		logger.Debug().Msgf("filtered %d of %d records for range %s", len(subset), len(dataset.Records), tr)
	}
	metricDashboardViewDuration.WithLabelValues(string(tr)).Observe(time.Since(started).Seconds())

	return buildView(tr, dataset, stats, series), nil
}

func (s *dashboardService) Statistics(ctx context.Context) (*models.AggregateStatistics, error) {
	dataset, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Statistics, nil
}

func (s *dashboardService) dataset(ctx context.Context) (*models.Dataset, error) {
	dataset, err := s.datasetStore.Get(ctx)
	if err != nil {
		if errors.Is(err, stores.ErrDatasetNotLoaded) {
			return nil, errDatasetNotLoaded(err)
		}
		return nil, errInternalDatasetStoreFailed(err)
	}
	return dataset, nil
}

// filterWindow keeps records with a valid timestamp inside [start, end].
func filterWindow(records []*models.TelemetryRecord, start, end time.Time) []*models.TelemetryRecord {
	subset := make([]*models.TelemetryRecord, 0, len(records))
	for _, rec := range records {
		if !rec.HasTimestamp || rec.Timestamp.Before(start) || rec.Timestamp.After(end) {
			continue
		}
		subset = append(subset, rec)
	}
	return subset
}

func buildView(tr models.TimeRange, dataset *models.Dataset, stats *models.AggregateStatistics, series []models.TimeBucket) *models.DashboardView {
	view := &models.DashboardView{
		TimeRange: tr,
		Source:    dataset.Source,
		Notice:    dataset.Notice,
		KPIs: models.KPIs{
			TotalRecords:    stats.TotalRecords,
			UniqueVariables: stats.UniqueVariables,
			CriticalAlarms:  CriticalCount(stats),
			CriticalPercent: CriticalFraction(stats),
			SampledPoints:   len(series),
		},
		AlarmDistribution: AlarmDistribution(stats),
		TopVariables:      TopVariables(stats, TopVariablesLimit),
		TimeSeries:        series,
		Measures:          stats.Measures,
	}
	if stats.StartTime != nil {
		view.Period.Start = stats.StartTime.Format(PeriodLayout)
	}
	if stats.EndTime != nil {
		view.Period.End = stats.EndTime.Format(PeriodLayout)
	}
	return view
}
