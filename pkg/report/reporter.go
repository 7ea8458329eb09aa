// Package report renders suite outcomes as JSON and Markdown
// reports, master summaries across suites and a JSON-lines run
// history.
package report

import (
	"encoding/json"
	"io"

	"digital.vasic.expectations/pkg/suite"
)

// Reporter defines the interface for generating suite reports.
type Reporter interface {
	// GenerateReport creates a report for a single suite
	// outcome.
	GenerateReport(outcome *suite.Outcome) ([]byte, error)

	// GenerateMasterSummary creates a summary of all suite
	// outcomes.
	GenerateMasterSummary(outcomes []*suite.Outcome) ([]byte, error)

	// WriteReport writes a report to the specified writer.
	WriteReport(w io.Writer, outcome *suite.Outcome) error
}

// Encoders, replaceable in tests.
var (
	jsonMarshal       = json.Marshal
	jsonMarshalIndent = json.MarshalIndent
)

func writeReport(
	r Reporter, w io.Writer, outcome *suite.Outcome,
) error {
	data, err := r.GenerateReport(outcome)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
