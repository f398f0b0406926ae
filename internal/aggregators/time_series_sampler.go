package aggregators

import (
	"fmt"
	"math/rand/v2"

	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/formats"
)

const (
	// SampleTarget bounds the number of records visited by the sampler.
	SampleTarget = 500
	// FlushEvery is the index modulus at which a bucket is emitted.
	FlushEvery = 1000
	// MinSampledBuckets below which the demo series is shown instead.
	MinSampledBuckets = 10
	// MaxSampledBuckets caps the chart length.
	MaxSampledBuckets = 50
	// RPMCeiling clamps engine speed before averaging.
	RPMCeiling = 5000

	demoSeriesSeed1 = 0x7e1e
	demoSeriesSeed2 = 0x2024
)

const (
	variableInternalBattery = "INTERNAL BATTERY"
	variableExternalBattery = "EXTERNAL BATTERY"
	variableEngineRPM       = "ENGINE RPM"
	variableVehicleSpeed    = "Vehicle speed"
)

//go:generate mockgen -source=time_series_sampler.go -destination=./mocks/time_series_sampler_mock.go -package=mocks
type TimeSeriesSampler interface {
	// Sample reduces records to at most MaxSampledBuckets chart points. It visits
	// about SampleTarget records; the sizing constants are fixed for every caller.
	Sample(records []*models.TelemetryRecord) []models.TimeBucket
}

type timeSeriesSampler struct{}

func NewTimeSeriesSampler() TimeSeriesSampler {
	return &timeSeriesSampler{}
}

// runningMean accumulates values between two flushes.
type runningMean struct {
	sum   float64
	count int
}

func (m *runningMean) add(v float64) {
	m.sum += v
	m.count++
}

func (m *runningMean) rounded() float64 {
	if m.count == 0 {
		return 0
	}
	return formats.Round(m.sum / float64(m.count))
}

func (s *timeSeriesSampler) Sample(records []*models.TelemetryRecord) []models.TimeBucket {
	n := len(records)
	stride := 1
	if n > 0 {
		stride = max(1, n/min(SampleTarget, n))
	}

	buckets := make([]models.TimeBucket, 0, MaxSampledBuckets)
	var battery, rpm, speed runningMean

	for i := 0; i < n; i += stride {
		rec := records[i]
		if rec == nil || !rec.HasTimestamp {
			continue
		}

		if rec.HasValue {
			switch rec.Variable {
			case variableInternalBattery, variableExternalBattery:
				battery.add(rec.Value)
			case variableEngineRPM:
				rpm.add(min(rec.Value, RPMCeiling))
			case variableVehicleSpeed:
				speed.add(rec.Value)
			}
		}

		if i%FlushEvery == 0 {
			buckets = append(buckets, models.TimeBucket{
				Label:   BucketLabel(rec.Timestamp.Hour(), rec.Timestamp.Minute()),
				Battery: battery.rounded(),
				RPM:     rpm.rounded(),
				Speed:   speed.rounded(),
			})
			battery, rpm, speed = runningMean{}, runningMean{}, runningMean{}
		}
	}

	if len(buckets) < MinSampledBuckets {
		return DemoTimeSeries()
	}
	if len(buckets) > MaxSampledBuckets {
		buckets = buckets[:MaxSampledBuckets]
	}
	return buckets
}

// BucketLabel formats an hour and minute as HH:MM with the minute floored to ten.
func BucketLabel(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute/10*10)
}

// DemoTimeSeries returns the 24 hourly placeholder points. The generator is
// seeded with constants so every call yields the same series.
func DemoTimeSeries() []models.TimeBucket {
	rng := rand.New(rand.NewPCG(demoSeriesSeed1, demoSeriesSeed2))
	series := make([]models.TimeBucket, 0, 24)
	for hour := 0; hour < 24; hour++ {
		series = append(series, models.TimeBucket{
			Label:   fmt.Sprintf("%02d:00", hour),
			Battery: formats.RoundTenth(70 + rng.Float64()*30),
			RPM:     formats.RoundTenth(800 + rng.Float64()*4000),
			Speed:   formats.RoundTenth(rng.Float64() * 120),
			Load:    formats.RoundTenth(10 + rng.Float64()*90),
		})
	}
	return series
}

