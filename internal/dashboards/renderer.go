package dashboards

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"telemetry-dashboard/internal/assistants"
	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/formats"

	"github.com/go-echarts/go-echarts/v2/components"
)

const PageTitle = "Vehicle Telemetry Dashboard"

// Renderer turns a dashboard view into a standalone HTML page.
//
//go:generate mockgen -source=renderer.go -destination=./mocks/renderer_mock.go -package=mocks
type Renderer interface {
	Render(w io.Writer, view *models.DashboardView) error
}

type renderer struct {
	header *template.Template
	panels *template.Template
}

func NewRenderer() Renderer {
	return &renderer{
		header: template.Must(template.New("header").Parse(headerTemplate)),
		panels: template.Must(template.New("panels").Parse(panelsTemplate)),
	}
}

func (r *renderer) Render(w io.Writer, view *models.DashboardView) error {
	if view == nil {
		return fmt.Errorf("render dashboard: nil view")
	}

	page := components.NewPage()
	page.SetPageTitle(PageTitle)
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		alarmDistributionPie(view),
		topVariablesBar(view),
		timeSeriesLine(view),
	)

	var charts bytes.Buffer
	if err := page.Render(&charts); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	var header bytes.Buffer
	if err := r.header.Execute(&header, newHeaderData(view)); err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	var panels bytes.Buffer
	if err := r.panels.Execute(&panels, newPanelsData()); err != nil {
		return fmt.Errorf("render panels: %w", err)
	}

	html := charts.String()
	html = strings.Replace(html, "</head>", pageCSS+"</head>", 1)
	html = strings.Replace(html, "<body>", "<body>\n"+header.String(), 1)
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		html = html[:i] + panels.String() + html[i:]
	}

	_, err := io.WriteString(w, html)
	return err
}

type card struct {
	Label  string
	Value  string
	Detail string
	Color  string
}

type rangeLink struct {
	Label  string
	Href   string
	Active bool
}

type legendEntry struct {
	Label string
	Color string
}

type headerData struct {
	Title    string
	Notice   string
	Demo     bool
	Period   string
	Ranges   []rangeLink
	KPIs     []card
	Measures []card
	Legend   []legendEntry
}

func newHeaderData(view *models.DashboardView) headerData {
	data := headerData{
		Title:  PageTitle,
		Notice: view.Notice,
		Demo:   view.Source == models.DatasetSourceDemo,
		Period: periodText(view.Period),
	}

	for _, tr := range models.TimeRanges {
		data.Ranges = append(data.Ranges, rangeLink{
			Label:  tr.Label(),
			Href:   "/?range=" + string(tr),
			Active: tr == view.TimeRange,
		})
	}

	data.KPIs = []card{
		{Label: "Total records", Value: formats.Count(view.KPIs.TotalRecords), Color: "#3b82f6"},
		{Label: "Unique variables", Value: formats.Count(int64(view.KPIs.UniqueVariables)), Color: "#8b5cf6"},
		{
			Label:  "Critical alarms",
			Value:  formats.Count(view.KPIs.CriticalAlarms),
			Detail: formats.Percent(view.KPIs.CriticalPercent) + " of records",
			Color:  "#ef4444",
		},
		{Label: "Sampled points", Value: formats.Count(int64(view.KPIs.SampledPoints)), Color: "#10b981"},
	}

	data.Measures = []card{
		{Label: "Battery measures", Value: formats.Count(view.Measures.Battery), Color: models.CategoryBattery.Color()},
		{Label: "RPM measures", Value: formats.Count(view.Measures.RPM), Color: models.CategoryEngine.Color()},
		{Label: "Speed measures", Value: formats.Count(view.Measures.Speed), Color: models.CategoryDriving.Color()},
		{Label: "Temperature measures", Value: formats.Count(view.Measures.Temperature), Color: models.CategoryTemperature.Color()},
	}

	for _, c := range models.AllCategories {
		data.Legend = append(data.Legend, legendEntry{Label: c.Label(), Color: c.Color()})
	}
	return data
}

// inputSlider is one range control of the prediction simulator. Name is the
// JSON field sent to PUT /api/predictions/inputs.
type inputSlider struct {
	Name  string
	Label string
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

type panelsData struct {
	Greeting string
	Sliders  []inputSlider
}

func newPanelsData() panelsData {
	defaults := models.DefaultScenarioInputs()
	return panelsData{
		Greeting: assistants.Greeting,
		Sliders: []inputSlider{
			{Name: "rpm", Label: "RPM", Min: 800, Max: 5000, Step: 100, Value: defaults.RPM},
			{Name: "speed", Label: "Speed (km/h)", Min: 0, Max: 180, Step: 1, Value: defaults.Speed},
			{Name: "battery", Label: "Battery (%)", Min: 0, Max: 100, Step: 1, Value: defaults.Battery},
			{Name: "engineLoad", Label: "Engine load (%)", Min: 0, Max: 100, Step: 1, Value: defaults.EngineLoad},
			{Name: "accelerationX", Label: "Acceleration X (g)", Min: -2, Max: 2, Step: 0.05, Value: defaults.AccelerationX},
		},
	}
}

func periodText(p models.Period) string {
	start, end := p.Start, p.End
	if start == "" {
		start = "N/A"
	}
	if end == "" {
		end = "N/A"
	}
	return start + " - " + end
}

const headerTemplate = `
<header class="dash-header">
  <h1>{{.Title}}</h1>
  <div class="dash-period">Period: {{.Period}}</div>
  <nav class="dash-ranges">
    {{- range .Ranges}}
    <a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
    {{- end}}
  </nav>
</header>
{{- if .Notice}}
<div class="dash-notice{{if .Demo}} demo{{end}}">{{.Notice}}</div>
{{- end}}
<section class="dash-cards kpis">
  {{- range .KPIs}}
  <div class="dash-card" style="border-top-color: {{.Color}}">
    <div class="label">{{.Label}}</div>
    <div class="value">{{.Value}}</div>
    {{- if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}
  </div>
  {{- end}}
</section>
<section class="dash-cards measures">
  {{- range .Measures}}
  <div class="dash-card" style="border-top-color: {{.Color}}">
    <div class="label">{{.Label}}</div>
    <div class="value">{{.Value}}</div>
  </div>
  {{- end}}
</section>
<div class="dash-legend">
  {{- range .Legend}}
  <span><i style="background: {{.Color}}"></i>{{.Label}}</span>
  {{- end}}
</div>
`

// panelsTemplate holds the chat and prediction sections. The script only writes
// server data through textContent.
const panelsTemplate = `
<section class="dash-panels">
  <div class="dash-panel" id="chat">
    <h2>AI assistant</h2>
    <div class="chat-messages" id="chat-messages">
      <div class="chat-msg assistant">{{.Greeting}}</div>
    </div>
    <form class="chat-form" id="chat-form">
      <input type="text" id="chat-input" name="message" autocomplete="off" placeholder="Ask about the fleet data">
      <button type="submit" id="chat-send">Send</button>
    </form>
  </div>
  <div class="dash-panel" id="predictions">
    <h2>Eco-driving predictions</h2>
    <div class="prediction-summary">
      <div>Consensus: <strong id="prediction-consensus">waiting for the first run</strong></div>
      <div>Vehicle: <strong id="prediction-vehicle">-</strong></div>
    </div>
    <div class="dash-cards prediction-models" id="prediction-models"></div>
    <div class="prediction-inputs" id="prediction-inputs">
      {{- range .Sliders}}
      <label for="input-{{.Name}}">{{.Label}} <output id="input-{{.Name}}-value">{{.Value}}</output></label>
      <input type="range" id="input-{{.Name}}" name="{{.Name}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Value}}">
      {{- end}}
    </div>
    <button type="button" id="prediction-refresh">Refresh predictions</button>
  </div>
</section>
<script>
(function () {
  var sessionId = "";
  var messages = document.getElementById("chat-messages");
  var chatInput = document.getElementById("chat-input");

  function appendMessage(role, text) {
    var div = document.createElement("div");
    div.className = "chat-msg " + role;
    div.textContent = text;
    messages.appendChild(div);
    messages.scrollTop = messages.scrollHeight;
    return div;
  }

  document.getElementById("chat-form").addEventListener("submit", function (e) {
    e.preventDefault();
    var text = chatInput.value.trim();
    if (!text) {
      return;
    }
    chatInput.value = "";
    appendMessage("user", text);
    var typing = appendMessage("assistant typing", "...");
    fetch("/api/chat", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify({sessionId: sessionId, message: text})
    }).then(function (res) {
      return res.json();
    }).then(function (body) {
      typing.remove();
      if (body.sessionId) {
        sessionId = body.sessionId;
      }
      appendMessage("assistant", body.reply || body.errorDescription || "No reply.");
    }).catch(function () {
      typing.remove();
      appendMessage("assistant", "The assistant is unreachable.");
    });
  });

  var sliders = document.querySelectorAll("#prediction-inputs input[type=range]");

  function showSlider(el) {
    document.getElementById(el.id + "-value").textContent = el.value;
  }

  function setText(id, text) {
    document.getElementById(id).textContent = text;
  }

  function renderRun(run) {
    if (!run || !run.predictions) {
      return;
    }
    var cards = document.getElementById("prediction-models");
    cards.replaceChildren();
    run.predictions.forEach(function (p) {
      var card = document.createElement("div");
      card.className = "dash-card";
      var label = document.createElement("div");
      label.className = "label";
      label.textContent = p.modelName;
      var value = document.createElement("div");
      value.className = "value";
      value.textContent = p.ecoScore;
      var detail = document.createElement("div");
      detail.className = "detail";
      detail.textContent = "alarm level " + p.alarmLevel + ", confidence " + Math.round(p.confidence * 100) + "%";
      card.append(label, value, detail);
      cards.appendChild(card);
    });
    setText("prediction-consensus", run.consensus.ecoScore + " (alarm level " + run.consensus.alarmLevel + ", " + run.consensus.modelCount + " models)");
    setText("prediction-vehicle", "fuel efficiency +" + run.vehicle.fuelEfficiency.toFixed(1) + "%, CO2 -" + run.vehicle.co2Saved.toFixed(1) + "%");
    if (run.inputs) {
      sliders.forEach(function (el) {
        if (el !== document.activeElement && run.inputs[el.name] !== undefined) {
          el.value = run.inputs[el.name];
          showSlider(el);
        }
      });
    }
  }

  sliders.forEach(function (el) {
    el.addEventListener("input", function () {
      showSlider(el);
    });
    el.addEventListener("change", function () {
      var body = {};
      body[el.name] = parseFloat(el.value);
      fetch("/api/predictions/inputs", {
        method: "PUT",
        headers: {"Content-Type": "application/json"},
        body: JSON.stringify(body)
      });
    });
  });

  document.getElementById("prediction-refresh").addEventListener("click", function () {
    fetch("/api/predictions/refresh", {method: "POST"}).then(function (res) {
      return res.json();
    }).then(renderRun);
  });

  function subscribe() {
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(scheme + location.host + "/ws/predictions");
    ws.onmessage = function (e) {
      renderRun(JSON.parse(e.data));
    };
    ws.onclose = function () {
      setTimeout(subscribe, 5000);
    };
  }
  subscribe();
})();
</script>
`

const pageCSS = `
    <style>
        body { max-width: 1400px; margin: 0 auto; padding: 20px; font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif; background: #f9fafb; }
        .dash-header { display: flex; flex-wrap: wrap; align-items: baseline; gap: 16px; margin-bottom: 12px; }
        .dash-header h1 { margin: 0; font-size: 22px; color: #1f2937; }
        .dash-period { color: #6b7280; font-size: 13px; }
        .dash-ranges a { padding: 4px 10px; margin-right: 4px; border-radius: 6px; background: #e5e7eb; color: #374151; text-decoration: none; font-size: 13px; }
        .dash-ranges a.active { background: #3b82f6; color: #fff; }
        .dash-notice { margin: 8px 0 16px; padding: 10px 14px; border-radius: 6px; background: #ecfdf5; color: #065f46; font-size: 13px; }
        .dash-notice.demo { background: #fffbeb; color: #92400e; }
        .dash-cards { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; margin-bottom: 16px; }
        .dash-card { background: #fff; border-top: 4px solid #d1d5db; border-radius: 8px; padding: 12px 16px; box-shadow: 0 1px 2px rgba(0,0,0,.06); }
        .dash-card .label { color: #6b7280; font-size: 12px; text-transform: uppercase; }
        .dash-card .value { color: #1f2937; font-size: 24px; font-weight: 700; }
        .dash-card .detail { color: #ef4444; font-size: 12px; }
        .dash-legend span { margin-right: 14px; font-size: 12px; color: #374151; }
        .dash-legend i { display: inline-block; width: 10px; height: 10px; margin-right: 4px; border-radius: 2px; }
        .dash-panels { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; margin-top: 16px; }
        .dash-panel { background: #fff; border-radius: 8px; padding: 12px 16px; box-shadow: 0 1px 2px rgba(0,0,0,.06); }
        .dash-panel h2 { margin: 0 0 10px; font-size: 16px; color: #1f2937; }
        .chat-messages { height: 320px; overflow-y: auto; display: flex; flex-direction: column; gap: 8px; margin-bottom: 10px; }
        .chat-msg { max-width: 80%; padding: 8px 12px; border-radius: 8px; font-size: 13px; white-space: pre-wrap; }
        .chat-msg.assistant { align-self: flex-start; background: #f3f4f6; color: #1f2937; }
        .chat-msg.user { align-self: flex-end; background: #3b82f6; color: #fff; }
        .chat-msg.typing { color: #9ca3af; }
        .chat-form { display: flex; gap: 8px; }
        .chat-form input { flex: 1; padding: 6px 10px; border: 1px solid #d1d5db; border-radius: 6px; }
        .dash-panel button { padding: 6px 14px; border: 0; border-radius: 6px; background: #3b82f6; color: #fff; cursor: pointer; }
        .prediction-summary { font-size: 13px; color: #374151; margin-bottom: 10px; }
        .prediction-models { grid-template-columns: repeat(2, 1fr); }
        .prediction-inputs { display: grid; grid-template-columns: 1fr 1fr; gap: 6px 12px; margin-bottom: 10px; font-size: 12px; color: #374151; }
    </style>
`
