package report

import (
	"fmt"
	"os"
	"time"

	"digital.vasic.expectations/pkg/suite"
)

// HistoricalEntry represents a single suite run in the historical
// log.
type HistoricalEntry struct {
	Timestamp        time.Time `json:"timestamp"`
	Suite            string    `json:"suite"`
	Passed           bool      `json:"passed"`
	Duration         string    `json:"duration"`
	AssertionsPassed int       `json:"assertions_passed"`
	AssertionsTotal  int       `json:"assertions_total"`
	ResultsPath      string    `json:"results_path,omitempty"`
}

// AppendToHistory adds an entry to the historical log stored at
// historyPath. Each entry is a single JSON line.
func AppendToHistory(
	historyPath string,
	outcome *suite.Outcome,
	resultsPath string,
) error {
	passed := 0
	for _, r := range outcome.Results {
		if r.Passed {
			passed++
		}
	}

	entry := HistoricalEntry{
		Timestamp:        outcome.StartedAt.Add(outcome.Duration),
		Suite:            outcome.Suite,
		Passed:           outcome.Passed,
		Duration:         outcome.Duration.String(),
		AssertionsPassed: passed,
		AssertionsTotal:  len(outcome.Results),
		ResultsPath:      resultsPath,
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}
