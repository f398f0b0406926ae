package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalRows       = 80000 // Total number of CSV rows to generate
	alarmClassCount = 5     // Alarm classes 0..4 are assigned round-robin
	criticalClass   = 3     // Classes >= 3 count as critical
)

var (
	variables = []string{
		"EXTERNAL BATTERY",
		"ENGINE RPM",
		"Vehicle speed",
		"ENGINE COOLANT TEMPERATURE",
		"FUEL RATE",
		"ACCELERATION X",
		"ENGINE LOAD",
		"TOTAL DISTANCE",
	}
	chatQuestions = []string{
		"How is my battery?",
		"Any critical alarms?",
		"What does the RPM data show?",
		"Give me a summary",
	}
)

// ### End - fixed configs

type dashboardView struct {
	Source string `json:"source"`
	KPIs   struct {
		TotalRecords    int64   `json:"totalRecords"`
		UniqueVariables int     `json:"uniqueVariables"`
		CriticalAlarms  int64   `json:"criticalAlarms"`
		CriticalPercent float64 `json:"criticalPercent"`
		SampledPoints   int     `json:"sampledPoints"`
	} `json:"kpis"`
	TopVariables []struct {
		Variable string `json:"variable"`
		Count    int64  `json:"count"`
	} `json:"topVariables"`
	Period struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"period"`
}

type chatReply struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
	Source    string `json:"source"`
}

type predictionRun struct {
	RunID   string `json:"runId"`
	Trigger string `json:"trigger"`
	Inputs  struct {
		RPM   float64 `json:"rpm"`
		Speed float64 `json:"speed"`
	} `json:"inputs"`
	Predictions []struct {
		ModelID         string   `json:"modelId"`
		EcoScore        int      `json:"ecoScore"`
		AlarmLevel      int      `json:"alarmLevel"`
		Recommendations []string `json:"recommendations"`
	} `json:"predictions"`
	Consensus struct {
		EcoScore   int `json:"ecoScore"`
		AlarmLevel int `json:"alarmLevel"`
		ModelCount int `json:"modelCount"`
	} `json:"consensus"`
}

// main runs the e2e scenario: 001_csv_dashboard_rollup
//
// This scenario uploads a generated 80,000 row telemetry CSV, checks the dashboard
// rollup computed from it, exercises the chat assistant concurrently and pushes new
// scenario inputs through the prediction scheduler.
//
// What it tests:
//   - CSV upload via PUT /api/dataset and full statistics accumulation
//   - Dashboard view via GET /api/dashboard for the "all" and "24h" ranges
//   - Concurrent chat turns via POST /api/chat, with the local fallback when no API key is set
//   - Debounced scenario input updates via PUT /api/predictions/inputs
//
// Expected results:
//   - 80,000 records across 8 variables, 10,000 rows each
//   - 32,000 critical alarms (40.0%)
//   - The time series is sampled down to at most 20 points
//   - Every chat turn is answered; none fail
//   - After the debounce window the latest prediction run has trigger "input" with the new RPM
//     and high-RPM advice from every model
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the dashboard server
	dateUTC := "2025-12-28"            // Date of the first generated timestamp (UTC)
	chatSessions := 8                  // Number of concurrent chat sessions
	turnsPerSession := 4               // Chat turns per session
	parallel := 4                      // Number of concurrent chat requests
	debounceWait := 2 * time.Second    // Time to wait for the debounced input run

	client := &http.Client{Timeout: 90 * time.Second}

	fmt.Println("Starting e2e scenario: 001_csv_dashboard_rollup")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("DATE_UTC: %s\n", dateUTC)
	fmt.Printf("TOTAL_ROWS: %d\n", totalRows)
	fmt.Printf("CHAT_SESSIONS: %d\n", chatSessions)
	fmt.Printf("TURNS_PER_SESSION: %d\n", turnsPerSession)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	// 1) Upload dataset
	fmt.Printf("Generating %d rows...\n", totalRows)
	csvData, err := generateCSV(dateUTC)
	if err != nil {
		fail("generate csv: %v", err)
	}
	fmt.Printf("Generated %d bytes of CSV\n", len(csvData))

	status, body, err := send(client, http.MethodPut, baseURL+"/api/dataset", "text/csv", csvData)
	if err != nil || status != http.StatusOK {
		fail("upload dataset: status=%d err=%v body=%s", status, err, body)
	}
	fmt.Printf("Dataset uploaded: %s\n", strings.TrimSpace(string(body)))
	fmt.Println()

	// 2) Check the dashboard rollup
	var all dashboardView
	if err := getJSON(client, baseURL+"/api/dashboard?range=all", &all); err != nil {
		fail("dashboard all: %v", err)
	}
	wantCritical := int64(totalRows / alarmClassCount * (alarmClassCount - criticalClass))
	check("source", all.Source == "csv", all.Source)
	check("total records", all.KPIs.TotalRecords == totalRows, all.KPIs.TotalRecords)
	check("unique variables", all.KPIs.UniqueVariables == len(variables), all.KPIs.UniqueVariables)
	check("critical alarms", all.KPIs.CriticalAlarms == wantCritical, all.KPIs.CriticalAlarms)
	check("critical percent", math.Abs(all.KPIs.CriticalPercent-40.0) < 0.05, all.KPIs.CriticalPercent)
	check("sampled points", all.KPIs.SampledPoints > 0 && all.KPIs.SampledPoints <= 20, all.KPIs.SampledPoints)
	for _, v := range all.TopVariables {
		check("count of "+v.Variable, v.Count == totalRows/int64(len(variables)), v.Count)
	}
	fmt.Printf("Period: %s - %s\n", all.Period.Start, all.Period.End)

	var day dashboardView
	if err := getJSON(client, baseURL+"/api/dashboard?range=24h", &day); err != nil {
		fail("dashboard 24h: %v", err)
	}
	check("24h records within total", day.KPIs.TotalRecords > 0 && day.KPIs.TotalRecords <= totalRows, day.KPIs.TotalRecords)
	fmt.Println()

	// 3) Concurrent chat
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var answered, fallback, failed int64
	for s := 0; s < chatSessions; s++ {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(session int) {
			defer wg.Done()
			defer func() { <-workerChan }()

			sessionID := ""
			for turn := 0; turn < turnsPerSession; turn++ {
				question := chatQuestions[(session+turn)%len(chatQuestions)]
				payload, _ := json.Marshal(map[string]string{"sessionId": sessionID, "message": question})
				status, body, err := send(client, http.MethodPost, baseURL+"/api/chat", "application/json", payload)
				if err != nil || status != http.StatusOK {
					atomic.AddInt64(&failed, 1)
					fmt.Fprintf(os.Stderr, "ERROR: session %d turn %d: status=%d err=%v\n", session, turn, status, err)
					return
				}
				var reply chatReply
				if err := json.Unmarshal(body, &reply); err != nil || reply.Reply == "" {
					atomic.AddInt64(&failed, 1)
					return
				}
				sessionID = reply.SessionID
				atomic.AddInt64(&answered, 1)
				if reply.Source == "fallback" {
					atomic.AddInt64(&fallback, 1)
				}
			}
			fmt.Printf("Session %d completed (%s)\n", session, sessionID)
		}(s)
	}
	wg.Wait()
	check("chat failures", atomic.LoadInt64(&failed) == 0, atomic.LoadInt64(&failed))
	fmt.Println()

	// 4) Push scenario inputs and wait for the debounced run
	status, body, err = send(client, http.MethodPut, baseURL+"/api/predictions/inputs", "application/json",
		[]byte(`{"rpm":3400,"speed":115}`))
	if err != nil || status != http.StatusAccepted {
		fail("update inputs: status=%d err=%v body=%s", status, err, body)
	}
	time.Sleep(debounceWait)

	var run predictionRun
	if err := getJSON(client, baseURL+"/api/predictions", &run); err != nil {
		fail("latest prediction: %v", err)
	}
	check("prediction trigger", run.Trigger == "input", run.Trigger)
	check("prediction rpm", run.Inputs.RPM == 3400, run.Inputs.RPM)
	check("model count", run.Consensus.ModelCount == 4 && len(run.Predictions) == 4, run.Consensus.ModelCount)
	for _, p := range run.Predictions {
		check("rpm advice from "+p.ModelID, contains(p.Recommendations, "Reduce engine speed (RPM)"), p.Recommendations)
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("Records: %d\n", all.KPIs.TotalRecords)
	fmt.Printf("Critical alarms: %d (%.1f%%)\n", all.KPIs.CriticalAlarms, all.KPIs.CriticalPercent)
	fmt.Printf("Records in last 24h: %d\n", day.KPIs.TotalRecords)
	fmt.Printf("Chat turns answered: %d (fallback %d)\n", answered, fallback)
	fmt.Printf("Prediction run: %s consensus eco=%d alarm=%d\n", run.RunID, run.Consensus.EcoScore, run.Consensus.AlarmLevel)
	fmt.Println("Scenario completed successfully")
}

func generateCSV(dateUTC string) ([]byte, error) {
	start, err := time.Parse("2006-01-02", dateUTC)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("variable,alarmClass,timestamp,value\n")
	for i := 0; i < totalRows; i++ {
		variable := variables[i%len(variables)]
		alarmClass := (i / len(variables)) % alarmClassCount
		ts := start.Add(time.Duration(i) * time.Second).Format("2006-01-02 15:04:05")
		fmt.Fprintf(&buf, "%s,%d,%s,%s\n", variable, alarmClass, ts, valueFor(variable, i))
	}
	return buf.Bytes(), nil
}

func valueFor(variable string, i int) string {
	switch variable {
	case "EXTERNAL BATTERY":
		return fmt.Sprintf("%.1f", 11.8+float64(i%20)/10)
	case "ENGINE RPM":
		return fmt.Sprintf("%d", 800+(i*7)%2600)
	case "Vehicle speed":
		return fmt.Sprintf("%d", (i*3)%120)
	default:
		return fmt.Sprintf("%d", i%100)
	}
}

func send(client *http.Client, method, url, contentType string, body []byte) (int, []byte, error) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, err
}

func getJSON(client *http.Client, url string, dst any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func check(name string, ok bool, got any) {
	if !ok {
		fail("check %q failed: got %v", name, got)
	}
	fmt.Printf("OK %s: %v\n", name, got)
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
