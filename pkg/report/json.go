package report

import (
	"io"
	"time"

	"digital.vasic.expectations/pkg/suite"
)

// JSONReporter generates JSON reports from suite outcomes.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

func (r *JSONReporter) marshal(v any) ([]byte, error) {
	if r.pretty {
		return jsonMarshalIndent(v, "", "  ")
	}
	return jsonMarshal(v)
}

// GenerateReport creates a JSON report for a single suite
// outcome.
func (r *JSONReporter) GenerateReport(
	outcome *suite.Outcome,
) ([]byte, error) {
	return r.marshal(outcome)
}

// jsonMasterSummary is the JSON structure for a master summary.
type jsonMasterSummary struct {
	GeneratedAt   time.Time        `json:"generated_at"`
	TotalSuites   int              `json:"total_suites"`
	Passed        int              `json:"passed"`
	Failed        int              `json:"failed"`
	Skipped       int              `json:"skipped"`
	TotalDuration time.Duration    `json:"total_duration"`
	Outcomes      []*suite.Outcome `json:"outcomes"`
}

// GenerateMasterSummary creates a JSON summary of all suite
// outcomes.
func (r *JSONReporter) GenerateMasterSummary(
	outcomes []*suite.Outcome,
) ([]byte, error) {
	summary := jsonMasterSummary{
		GeneratedAt: time.Now(),
		TotalSuites: len(outcomes),
		Outcomes:    outcomes,
	}

	for _, o := range outcomes {
		switch {
		case o.Skipped:
			summary.Skipped++
		case o.Passed:
			summary.Passed++
		default:
			summary.Failed++
		}
		summary.TotalDuration += o.Duration
	}

	return r.marshal(summary)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	outcome *suite.Outcome,
) error {
	return writeReport(r, w, outcome)
}
