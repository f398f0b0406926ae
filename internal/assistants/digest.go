package assistants

import (
	"fmt"
	"strings"

	"telemetry-dashboard/internal/aggregators"
	"telemetry-dashboard/internal/models"
	"telemetry-dashboard/internal/shared/formats"
)

const (
	// Greeting opens every conversation.
	Greeting = "Hello! I am your eco-driving AI assistant. How can I help you today?"

	digestTopVariables = 3

	systemPromptIntro = "You are an expert assistant in eco-driving and automotive IoT data analysis. " +
		"You analyse vehicle sensor data to optimise fuel consumption and reduce environmental impact."
	systemPromptOutro = "Answer precisely and technically, based on the data provided."
)

// Digest summarises the dataset for the system prompt.
func Digest(dataset *models.Dataset) string {
	if dataset == nil || dataset.IsDemo() {
		return aggregators.DemoPointsLabel
	}
	stats := dataset.Statistics

	alarms := make([]string, 0, len(stats.AlarmClassCounts))
	for _, slice := range aggregators.AlarmDistribution(stats) {
		alarms = append(alarms, fmt.Sprintf("%s: %s", slice.Name, formats.Count(slice.Count)))
	}

	top := make([]string, 0, digestTopVariables)
	for _, v := range aggregators.TopVariables(stats, digestTopVariables) {
		top = append(top, fmt.Sprintf("%s (%s measures)", v.Variable, formats.Count(v.Count)))
	}

	var b strings.Builder
	b.WriteString("Context of the analysed data:\n")
	fmt.Fprintf(&b, "- Total records: %s\n", formats.Count(stats.TotalRecords))
	fmt.Fprintf(&b, "- Unique variables detected: %d\n", stats.UniqueVariables)
	fmt.Fprintf(&b, "- Analysis period: %s - %s\n", formats.Date(stats.StartTime), formats.Date(stats.EndTime))
	fmt.Fprintf(&b, "- Alarm distribution: %s\n", strings.Join(alarms, ", "))
	fmt.Fprintf(&b, "- Top 3 variables: %s", strings.Join(top, ", "))
	return b.String()
}

// SystemPrompt is the first message of every outbound request.
func SystemPrompt(dataset *models.Dataset) string {
	return systemPromptIntro + "\n\n" + Digest(dataset) + "\n\n" + systemPromptOutro
}

// FallbackReply is returned whenever the completion API cannot answer.
func FallbackReply(stats *models.AggregateStatistics) string {
	if stats == nil {
		stats = models.NewEmptyAggregateStatistics()
	}

	var b strings.Builder
	b.WriteString("The assistant API is unreachable. Here is an analysis based on your local data:\n\n")
	b.WriteString("**Detected statistics:**\n")
	fmt.Fprintf(&b, "- %s records in total\n", formats.Count(stats.TotalRecords))
	fmt.Fprintf(&b, "- %s critical alarms (levels 3-5)\n", formats.Count(aggregators.CriticalCount(stats)))
	fmt.Fprintf(&b, "- %s battery measures\n", formats.Count(stats.Measures.Battery))
	fmt.Fprintf(&b, "- %s engine RPM measures\n\n", formats.Count(stats.Measures.RPM))
	b.WriteString("**Eco-driving tips:**\n")
	b.WriteString("1. Keep engine speed between 1500 and 2500 RPM for optimal efficiency\n")
	b.WriteString("2. Anticipate stops to avoid harsh braking\n")
	b.WriteString("3. Check tyre pressure regularly")
	return b.String()
}
