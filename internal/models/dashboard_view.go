package models

// DashboardView is everything the dashboard page and /api/dashboard render.
//
// Example JSON (abridged):
//
//	{
//	  "timeRange": "24h",
//	  "source": "csv",
//	  "kpis": {"totalRecords": 83469, "uniqueVariables": 51, "criticalAlarms": 18540, "criticalPercent": 22.2, "sampledPoints": 20},
//	  "alarmDistribution": [{"alarmClass": 0, "name": "Normal", "count": 43084, "color": "#10b981"}],
//	  "topVariables": [{"variable": "EXTERNAL BATTERY", "count": 9625, "category": "battery"}],
//	  "timeSeries": [{"time": "14:20", "battery": 87, "rpm": 1840, "speed": 62, "load": 0}]
//	}
type DashboardView struct {
	TimeRange         TimeRange       `json:"timeRange"`
	Source            DatasetSource   `json:"source"`
	Notice            string          `json:"notice,omitempty"`
	KPIs              KPIs            `json:"kpis"`
	AlarmDistribution []AlarmSlice    `json:"alarmDistribution"`
	TopVariables      []VariableCount `json:"topVariables"`
	TimeSeries        []TimeBucket    `json:"timeSeries"`
	Measures          MeasureCounts   `json:"measures"`
	Period            Period          `json:"period"`
}

type KPIs struct {
	TotalRecords    int64   `json:"totalRecords"`
	UniqueVariables int     `json:"uniqueVariables"`
	CriticalAlarms  int64   `json:"criticalAlarms"`
	CriticalPercent float64 `json:"criticalPercent"`
	SampledPoints   int     `json:"sampledPoints"`
}

// Period is the formatted timestamp span of the view; empty strings mean unknown.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
