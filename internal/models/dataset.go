package models

import "time"

type DatasetSource string

const (
	DatasetSourceCSV  DatasetSource = "csv"
	DatasetSourceDemo DatasetSource = "demo"
)

// Dataset is the snapshot produced by one load. Nothing mutates it after load.
type Dataset struct {
	Source     DatasetSource        `json:"source"`
	Records    []*TelemetryRecord   `json:"-"`
	Statistics *AggregateStatistics `json:"statistics"`
	TimeSeries []TimeBucket         `json:"timeSeries"`
	Notice     string               `json:"notice"`
	LoadedAt   time.Time            `json:"loadedAt"`
}

func (d *Dataset) IsDemo() bool {
	return d.Source == DatasetSourceDemo
}
