package dashboards

import (
	"fmt"
	"strings"

	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/formats"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	ChartIDAlarms       = "alarm_distribution"
	ChartIDTopVariables = "top_variables"
	ChartIDTimeSeries   = "time_series"

	colorBattery = "#10b981"
	colorSpeed   = "#3b82f6"
	colorRPM     = "#ef4444"
)

// chartTextReplacer maps markup characters to full-width look-alikes. Chart options
// are emitted as unescaped JSON inside an inline script, so data-derived text must
// never carry a literal "</script>".
var chartTextReplacer = strings.NewReplacer("<", "\uFF1C", ">", "\uFF1E", "&", "\uFF06")

func chartText(s string) string {
	return chartTextReplacer.Replace(s)
}

func alarmDistributionPie(view *models.DashboardView) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: ChartIDAlarms,
			Width:   "100%",
			Height:  "380px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Alarm distribution",
			Subtitle: fmt.Sprintf("%s critical (levels 3-5)", formats.Percent(view.KPIs.CriticalPercent)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: "{b}: {c} ({d}%)",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Orient: "vertical",
			Left:   "right",
		}),
	)

	data := make([]opts.PieData, 0, len(view.AlarmDistribution))
	for _, slice := range view.AlarmDistribution {
		data = append(data, opts.PieData{
			Name:      chartText(slice.Name),
			Value:     slice.Count,
			ItemStyle: &opts.ItemStyle{Color: slice.Color},
		})
	}
	pie.AddSeries("Alarms", data,
		charts.WithPieChartOpts(opts.PieChart{
			Radius: []string{"40%", "70%"},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}),
	)
	return pie
}

func topVariablesBar(view *models.DashboardView) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: ChartIDTopVariables,
			Width:   "100%",
			Height:  "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Top variables",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Rotate:   35,
				Interval: "0",
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Records",
			Type: "value",
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "8%",
			Right:  "4%",
			Bottom: "28%",
		}),
	)

	labels := make([]string, 0, len(view.TopVariables))
	data := make([]opts.BarData, 0, len(view.TopVariables))
	for _, v := range view.TopVariables {
		labels = append(labels, chartText(v.Variable))
		data = append(data, opts.BarData{
			Name:      chartText(v.FullName),
			Value:     v.Count,
			ItemStyle: &opts.ItemStyle{Color: v.Category.Color()},
		})
	}
	bar.SetXAxis(labels).AddSeries("Records", data)
	return bar
}

// timeSeriesLine plots battery and speed on the left axis and RPM on the right one.
func timeSeriesLine(view *models.DashboardView) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: ChartIDTimeSeries,
			Width:   "100%",
			Height:  "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Telemetry over time",
			Subtitle: fmt.Sprintf("%d sampled points", len(view.TimeSeries)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Time",
			Type: "category",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Battery % / km/h",
			Type: "value",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:  "slider",
			Start: 0,
			End:   100,
		}),
	)
	line.ExtendYAxis(opts.YAxis{
		Name: "RPM",
		Type: "value",
	})

	labels := make([]string, len(view.TimeSeries))
	battery := make([]opts.LineData, len(view.TimeSeries))
	speed := make([]opts.LineData, len(view.TimeSeries))
	rpm := make([]opts.LineData, len(view.TimeSeries))
	for i, b := range view.TimeSeries {
		labels[i] = chartText(b.Label)
		battery[i] = opts.LineData{Value: b.Battery}
		speed[i] = opts.LineData{Value: b.Speed}
		rpm[i] = opts.LineData{Value: b.RPM}
	}

	line.SetXAxis(labels).
		AddSeries("Battery", battery,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorBattery}),
		).
		AddSeries("Speed", speed,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorSpeed}),
		).
		AddSeries("RPM", rpm,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), YAxisIndex: 1}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRPM}),
		)
	return line
}
