package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"digital.vasic.expectations/pkg/suite"
)

// MasterSummary represents an aggregated summary of all suite
// runs.
type MasterSummary struct {
	ID               string         `json:"id"`
	GeneratedAt      time.Time      `json:"generated_at"`
	Suites           []SuiteSummary `json:"suites"`
	TotalSuites      int            `json:"total_suites"`
	PassedSuites     int            `json:"passed_suites"`
	FailedSuites     int            `json:"failed_suites"`
	SkippedSuites    int            `json:"skipped_suites"`
	TotalAssertions  int            `json:"total_assertions"`
	PassedAssertions int            `json:"passed_assertions"`
	TypeMismatches   int            `json:"type_mismatches"`
	TotalDuration    time.Duration  `json:"total_duration"`
	PassRate         float64        `json:"pass_rate"`
}

// SuiteSummary represents a summary of a single suite.
type SuiteSummary struct {
	Name             string        `json:"name"`
	Passed           bool          `json:"passed"`
	Skipped          bool          `json:"skipped,omitempty"`
	Duration         time.Duration `json:"duration"`
	AssertionsPassed int           `json:"assertions_passed"`
	AssertionsTotal  int           `json:"assertions_total"`
}

// BuildMasterSummary creates a master summary from suite
// outcomes.
func BuildMasterSummary(outcomes []*suite.Outcome) *MasterSummary {
	now := time.Now()
	summary := &MasterSummary{
		ID:          fmt.Sprintf("summary_%s", now.Format("20060102_150405")),
		GeneratedAt: now,
		Suites:      make([]SuiteSummary, 0, len(outcomes)),
	}

	for _, o := range outcomes {
		passed := 0
		for _, r := range o.Results {
			if r.Passed {
				passed++
			}
			if r.TypeMismatch {
				summary.TypeMismatches++
			}
		}

		summary.Suites = append(summary.Suites, SuiteSummary{
			Name:             o.Suite,
			Passed:           o.Passed,
			Skipped:          o.Skipped,
			Duration:         o.Duration,
			AssertionsPassed: passed,
			AssertionsTotal:  len(o.Results),
		})
		summary.TotalSuites++
		summary.TotalAssertions += len(o.Results)
		summary.PassedAssertions += passed
		summary.TotalDuration += o.Duration

		switch {
		case o.Skipped:
			summary.SkippedSuites++
		case o.Passed:
			summary.PassedSuites++
		default:
			summary.FailedSuites++
		}
	}

	if summary.TotalSuites > 0 {
		summary.PassRate = float64(summary.PassedSuites) /
			float64(summary.TotalSuites)
	}

	return summary
}

// SaveMasterSummary saves the master summary to both JSON and
// Markdown files in the given output directory, and points
// latest_summary.{json,md} at them.
func SaveMasterSummary(summary *MasterSummary, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir, fmt.Sprintf("master_summary_%s.json", ts),
	)
	jsonData, err := jsonMarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON summary: %w", err)
	}

	mdPath := filepath.Join(
		outputDir, fmt.Sprintf("master_summary_%s.md", ts),
	)
	md := generateSummaryMarkdown(summary)
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("failed to write Markdown summary: %w", err)
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}

// SaveOutcomes writes one JSON and one Markdown report per
// outcome into outputDir and returns the written paths.
func SaveOutcomes(outcomes []*suite.Outcome, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	reporters := []struct {
		ext string
		r   Reporter
	}{
		{".json", NewJSONReporter(true)},
		{".md", NewMarkdownReporter()},
	}

	var paths []string
	for _, o := range outcomes {
		for _, rep := range reporters {
			data, err := rep.r.GenerateReport(o)
			if err != nil {
				return paths, fmt.Errorf("render %s: %w", o.Suite, err)
			}
			path := filepath.Join(outputDir, fileName(o.Suite)+rep.ext)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return paths, fmt.Errorf("write %s: %w", path, err)
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// fileName maps a suite name to a safe file stem.
func fileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, name)
}

// generateSummaryMarkdown creates markdown from a master
// summary.
func generateSummaryMarkdown(summary *MasterSummary) string {
	var sb strings.Builder

	sb.WriteString("# Expectations - Master Summary\n\n")
	sb.WriteString(fmt.Sprintf("**Summary ID:** %s\n\n", summary.ID))
	sb.WriteString(fmt.Sprintf(
		"**Generated:** %s\n\n",
		summary.GeneratedAt.Format(time.RFC3339),
	))

	sb.WriteString("## Overview\n\n")
	sb.WriteString("| Suite | Status | Duration | Assertions |\n")
	sb.WriteString("|-------|--------|----------|------------|\n")

	for _, s := range summary.Suites {
		sb.WriteString(fmt.Sprintf(
			"| %s | %s | %v | %d/%d |\n",
			cell(s.Name), statusLabel(s.Passed, s.Skipped), s.Duration,
			s.AssertionsPassed, s.AssertionsTotal,
		))
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total Suites | %d |\n", summary.TotalSuites))
	sb.WriteString(fmt.Sprintf("| Passed | %d |\n", summary.PassedSuites))
	sb.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.FailedSuites))
	sb.WriteString(fmt.Sprintf("| Skipped | %d |\n", summary.SkippedSuites))
	sb.WriteString(fmt.Sprintf(
		"| Assertions | %d/%d |\n",
		summary.PassedAssertions, summary.TotalAssertions,
	))
	sb.WriteString(fmt.Sprintf(
		"| Type Mismatches | %d |\n", summary.TypeMismatches,
	))
	sb.WriteString(fmt.Sprintf(
		"| Pass Rate | %.0f%% |\n", summary.PassRate*100,
	))
	sb.WriteString(fmt.Sprintf(
		"| Total Duration | %v |\n", summary.TotalDuration,
	))

	return sb.String()
}
