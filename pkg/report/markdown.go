package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"digital.vasic.expectations/pkg/assertion"
	"digital.vasic.expectations/pkg/suite"
)

// MarkdownReporter generates Markdown reports from suite outcomes.
type MarkdownReporter struct{}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter() *MarkdownReporter {
	return &MarkdownReporter{}
}

// GenerateReport creates a Markdown report for a single suite
// outcome, with one table row per assertion.
func (r *MarkdownReporter) GenerateReport(
	outcome *suite.Outcome,
) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Suite: %s\n\n", outcome.Suite))
	if outcome.Description != "" {
		sb.WriteString(outcome.Description + "\n\n")
	}
	sb.WriteString(fmt.Sprintf(
		"**Status:** %s\n\n",
		statusLabel(outcome.Passed, outcome.Skipped),
	))
	if outcome.SkipReason != "" {
		sb.WriteString(fmt.Sprintf(
			"**Skipped:** %s\n\n", outcome.SkipReason,
		))
	}
	sb.WriteString(fmt.Sprintf(
		"**Started:** %s\n\n",
		outcome.StartedAt.Format(time.RFC3339),
	))
	sb.WriteString(fmt.Sprintf(
		"**Duration:** %v\n\n", outcome.Duration,
	))

	sb.WriteString("## Assertions\n\n")
	sb.WriteString("| Target | Verb | Status | Message |\n")
	sb.WriteString("|--------|------|--------|---------|\n")
	for _, a := range outcome.Results {
		sb.WriteString(fmt.Sprintf(
			"| %s | %s | %s | %s |\n",
			cell(a.Target), cell(verbLabel(a)),
			resultLabel(a), cell(a.Message),
		))
	}

	return []byte(sb.String()), nil
}

// GenerateMasterSummary creates a Markdown summary of all suite
// outcomes.
func (r *MarkdownReporter) GenerateMasterSummary(
	outcomes []*suite.Outcome,
) ([]byte, error) {
	return []byte(generateSummaryMarkdown(
		BuildMasterSummary(outcomes),
	)), nil
}

// WriteReport writes a Markdown report to the specified writer.
func (r *MarkdownReporter) WriteReport(
	w io.Writer,
	outcome *suite.Outcome,
) error {
	return writeReport(r, w, outcome)
}

func statusLabel(passed, skipped bool) string {
	switch {
	case skipped:
		return "SKIPPED"
	case passed:
		return "PASSED"
	}
	return "FAILED"
}

func resultLabel(r assertion.Result) string {
	switch {
	case r.Passed:
		return "PASS"
	case r.TypeMismatch:
		return "TYPE MISMATCH"
	}
	return "FAIL"
}

func verbLabel(r assertion.Result) string {
	if r.Negated {
		return "not " + r.Verb
	}
	return r.Verb
}

// cell escapes text for a Markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
