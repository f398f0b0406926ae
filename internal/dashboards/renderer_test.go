package dashboards

import (
	"strings"
	"testing"

	"telemetry-dashboard/internal/assistants"
	"telemetry-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleView() *models.DashboardView {
	return &models.DashboardView{
		TimeRange: models.TimeRangeDay,
		Source:    models.DatasetSourceCSV,
		Notice:    "Data loaded: 83,469 records analysed",
		KPIs: models.KPIs{
			TotalRecords:    83469,
			UniqueVariables: 37,
			CriticalAlarms:  18540,
			CriticalPercent: 22.2,
			SampledPoints:   3,
		},
		AlarmDistribution: []models.AlarmSlice{
			{AlarmClass: 0, Name: "Normal", Count: 43084, Color: "#10b981"},
			{AlarmClass: 3, Name: "Level 3", Count: 18540, Color: "#f97316"},
		},
		TopVariables: []models.VariableCount{
			{Variable: "EXTERNAL BATTERY", FullName: "EXTERNAL BATTERY", Count: 9625, Category: models.CategoryBattery},
			{Variable: "ENGINE RPM", FullName: "ENGINE RPM", Count: 4514, Category: models.CategoryEngine},
		},
		TimeSeries: []models.TimeBucket{
			{Label: "10:00", Battery: 87, RPM: 1840, Speed: 62},
			{Label: "10:10", Battery: 86, RPM: 2100, Speed: 70},
			{Label: "10:20", Battery: 85, RPM: 1950, Speed: 66},
		},
		Measures: models.MeasureCounts{Battery: 9625, RPM: 4514, Speed: 3803, Temperature: 2100},
		Period:   models.Period{Start: "01/05/2024 08:30", End: "02/05/2024 17:45"},
	}
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	require.NoError(t, NewRenderer().Render(&out, sampleView()))
	html := out.String()

	assert.Contains(t, html, "<title>"+PageTitle+"</title>")
	for _, id := range []string{ChartIDAlarms, ChartIDTopVariables, ChartIDTimeSeries} {
		assert.Contains(t, html, id)
	}

	assert.Contains(t, html, "83,469")
	assert.Contains(t, html, "18,540")
	assert.Contains(t, html, "22.2% of records")
	assert.Contains(t, html, "9,625")
	assert.Contains(t, html, "Temperature measures")
	assert.Contains(t, html, "Period: 01/05/2024 08:30 - 02/05/2024 17:45")
	assert.Contains(t, html, "Data loaded: 83,469 records analysed")
	assert.Contains(t, html, `<a href="/?range=24h" class="active">24h</a>`)
	assert.Contains(t, html, `<a href="/?range=all">All</a>`)
	assert.Contains(t, html, "EXTERNAL BATTERY")
	assert.Contains(t, html, "#ef4444")

	assert.Less(t, strings.Index(html, `<header class="dash-header">`), strings.Index(html, ChartIDAlarms+`"`))
	assert.Equal(t, 1, strings.Count(html, ".dash-card {"))
}

func TestRenderer_Render_DemoWithoutPeriod(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.Source = models.DatasetSourceDemo
	view.Notice = "data file unavailable, using demo data"
	view.Period = models.Period{}
	view.TimeRange = models.TimeRangeAll

	var out strings.Builder
	require.NoError(t, NewRenderer().Render(&out, view))
	html := out.String()

	assert.Contains(t, html, `class="dash-notice demo"`)
	assert.Contains(t, html, "Period: N/A - N/A")
	assert.Contains(t, html, `<a href="/?range=all" class="active">All</a>`)
}

func TestRenderer_Render_EscapesNotice(t *testing.T) {
	t.Parallel()

	view := sampleView()
	view.Notice = `<script>alert("x")</script>`

	var out strings.Builder
	require.NoError(t, NewRenderer().Render(&out, view))

	assert.NotContains(t, out.String(), `<script>alert("x")</script>`)
	assert.Contains(t, out.String(), "&lt;script&gt;")
}

func TestRenderer_Render_ChartLabelsCannotCloseScript(t *testing.T) {
	t.Parallel()

	const payload = `</script><script>alert(1)</script>`

	tests := []struct {
		name   string
		mutate func(view *models.DashboardView)
	}{
		{
			name: "top variable name",
			mutate: func(view *models.DashboardView) {
				view.TopVariables[0].Variable = payload
				view.TopVariables[0].FullName = payload
			},
		},
		{
			name: "alarm slice name",
			mutate: func(view *models.DashboardView) {
				view.AlarmDistribution[0].Name = payload
			},
		},
		{
			name: "time bucket label",
			mutate: func(view *models.DashboardView) {
				view.TimeSeries[0].Label = payload
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view := sampleView()
			tt.mutate(view)

			var out strings.Builder
			require.NoError(t, NewRenderer().Render(&out, view))
			html := out.String()

			assert.NotContains(t, html, "<script>alert(1)")
			assert.Contains(t, html, "\uFF1C/script\uFF1E\uFF1Cscript\uFF1Ealert(1)")
		})
	}
}

func TestChartText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ENGINE RPM", chartText("ENGINE RPM"))
	assert.Equal(t, "A \uFF06 B \uFF1C 3", chartText("A & B < 3"))
}

func TestRenderer_Render_ChatPanel(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	require.NoError(t, NewRenderer().Render(&out, sampleView()))
	html := out.String()

	assert.Contains(t, html, `<div class="dash-panel" id="chat">`)
	assert.Contains(t, html, `<div class="chat-msg assistant">`+assistants.Greeting+`</div>`)
	assert.Contains(t, html, `<input type="text" id="chat-input" name="message"`)
	assert.Contains(t, html, `<button type="submit" id="chat-send">Send</button>`)
	assert.Contains(t, html, `fetch("/api/chat", {`)
	assert.Contains(t, html, `JSON.stringify({sessionId: sessionId, message: text})`)
}

func TestRenderer_Render_PredictionPanel(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	require.NoError(t, NewRenderer().Render(&out, sampleView()))
	html := out.String()

	assert.Contains(t, html, `<div class="dash-panel" id="predictions">`)
	assert.Contains(t, html, `id="prediction-models"`)
	assert.Contains(t, html, `id="prediction-consensus"`)
	assert.Contains(t, html, `id="prediction-vehicle"`)

	sliders := []string{
		`<input type="range" id="input-rpm" name="rpm" min="800" max="5000" step="100" value="1800">`,
		`<input type="range" id="input-speed" name="speed" min="0" max="180" step="1" value="65">`,
		`<input type="range" id="input-battery" name="battery" min="0" max="100" step="1" value="88">`,
		`<input type="range" id="input-engineLoad" name="engineLoad" min="0" max="100" step="1" value="42">`,
		`<input type="range" id="input-accelerationX" name="accelerationX" min="-2" max="2" step="0.05" value="0.15">`,
	}
	for _, slider := range sliders {
		assert.Contains(t, html, slider)
	}

	assert.Contains(t, html, `fetch("/api/predictions/inputs", {`)
	assert.Contains(t, html, `method: "PUT"`)
	assert.Contains(t, html, `<button type="button" id="prediction-refresh">Refresh predictions</button>`)
	assert.Contains(t, html, `fetch("/api/predictions/refresh", {method: "POST"})`)
	assert.Contains(t, html, `"/ws/predictions"`)

	panels := strings.Index(html, `<section class="dash-panels">`)
	require.Positive(t, panels)
	assert.Greater(t, panels, strings.LastIndex(html, ChartIDTimeSeries))
	assert.Less(t, panels, strings.LastIndex(html, "</body>"))
	assert.Equal(t, 1, strings.Count(html, `<section class="dash-panels">`))
}

func TestRenderer_Render_NilView(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	err := NewRenderer().Render(&out, nil)
	require.Error(t, err)
	assert.Empty(t, out.String())
}
