package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.expectations/pkg/assertion"
	"digital.vasic.expectations/pkg/suite"
)

func makeOutcomes() []*suite.Outcome {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []*suite.Outcome{
		{
			Suite:       "widget",
			Description: "widget payload",
			StartedAt:   start,
			Duration:    2 * time.Millisecond,
			Passed:      true,
			Results: []assertion.Result{
				{Verb: "equal", Target: "name", Passed: true,
					Message: `Expected "widget" to equal "widget"`},
				{Verb: "contain", Target: "tags", Negated: true, Passed: true,
					Message: `Expected [a c] to not contain "b"`},
			},
		},
		{
			Suite:     "owner/contact",
			StartedAt: start,
			Duration:  3 * time.Millisecond,
			Results: []assertion.Result{
				{Verb: "include", Target: "owner.email",
					Message: `Expected "ops" to contain "@"`},
				{Verb: "be_greater_than", Target: "count", TypeMismatch: true,
					Message: "be_greater_than: cannot order a | b"},
				{Verb: "be_empty", Target: "notes", Passed: true,
					Message: `Expected "" to be empty`},
			},
		},
	}
}

func TestJSONReporter_GenerateReport(t *testing.T) {
	tests := []struct {
		name   string
		pretty bool
	}{
		{"pretty", true},
		{"compact", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := NewJSONReporter(tt.pretty).GenerateReport(makeOutcomes()[0])
			require.NoError(t, err)
			require.True(t, json.Valid(data))
			assert.Equal(t, tt.pretty, strings.Contains(string(data), "\n  "))

			var decoded suite.Outcome
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, "widget", decoded.Suite)
			assert.Len(t, decoded.Results, 2)
		})
	}
}

func TestJSONReporter_GenerateMasterSummary(t *testing.T) {
	data, err := NewJSONReporter(true).GenerateMasterSummary(makeOutcomes())
	require.NoError(t, err)

	var summary jsonMasterSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 2, summary.TotalSuites)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 5*time.Millisecond, summary.TotalDuration)
	assert.Len(t, summary.Outcomes, 2)

	data, err = NewJSONReporter(false).GenerateMasterSummary(nil)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestJSONReporter_MarshalError(t *testing.T) {
	original := jsonMarshal
	t.Cleanup(func() { jsonMarshal = original })
	jsonMarshal = func(any) ([]byte, error) { return nil, assert.AnError }

	var buf bytes.Buffer
	err := NewJSONReporter(false).WriteReport(&buf, makeOutcomes()[0])
	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, buf.Len())
}

func TestMarkdownReporter_GenerateReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownReporter().WriteReport(&buf, makeOutcomes()[1]))

	md := buf.String()
	assert.Contains(t, md, "# Suite: owner/contact")
	assert.Contains(t, md, "**Status:** FAILED")
	assert.Contains(t, md, "**Started:** 2026-03-01T12:00:00Z")
	assert.Contains(t, md, `| owner.email | include | FAIL | Expected "ops" to contain "@" |`)
	assert.Contains(t, md, `| count | be_greater_than | TYPE MISMATCH | be_greater_than: cannot order a \| b |`)
	assert.Contains(t, md, "| notes | be_empty | PASS |")

	data, err := NewMarkdownReporter().GenerateReport(makeOutcomes()[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "widget payload")
	assert.Contains(t, string(data), "| tags | not contain | PASS |")
}

func TestMarkdownReporter_GenerateMasterSummary(t *testing.T) {
	data, err := NewMarkdownReporter().GenerateMasterSummary(makeOutcomes())
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "| widget | PASSED | 2ms | 2/2 |")
	assert.Contains(t, md, "| owner/contact | FAILED | 3ms | 1/3 |")
	assert.Contains(t, md, "| Pass Rate | 50% |")
	assert.Contains(t, md, "| Type Mismatches | 1 |")
}

func TestBuildMasterSummary(t *testing.T) {
	s := BuildMasterSummary(makeOutcomes())

	assert.True(t, strings.HasPrefix(s.ID, "summary_"))
	assert.Equal(t, 2, s.TotalSuites)
	assert.Equal(t, 1, s.PassedSuites)
	assert.Equal(t, 1, s.FailedSuites)
	assert.Equal(t, 5, s.TotalAssertions)
	assert.Equal(t, 3, s.PassedAssertions)
	assert.Equal(t, 1, s.TypeMismatches)
	assert.InDelta(t, 0.5, s.PassRate, 1e-9)
	require.Len(t, s.Suites, 2)
	assert.Equal(t, SuiteSummary{
		Name: "widget", Passed: true, Duration: 2 * time.Millisecond,
		AssertionsPassed: 2, AssertionsTotal: 2,
	}, s.Suites[0])

	empty := BuildMasterSummary(nil)
	assert.Zero(t, empty.PassRate)
	assert.Empty(t, empty.Suites)
}

func TestSaveMasterSummary(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	s := BuildMasterSummary(makeOutcomes())

	require.NoError(t, SaveMasterSummary(s, dir))

	ts := s.GeneratedAt.Format("20060102_150405")
	assert.FileExists(t, filepath.Join(dir, "master_summary_"+ts+".json"))
	assert.FileExists(t, filepath.Join(dir, "master_summary_"+ts+".md"))

	data, err := os.ReadFile(filepath.Join(dir, "latest_summary.json"))
	require.NoError(t, err)
	var decoded MasterSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s.ID, decoded.ID)
}

func TestSaveMasterSummary_Errors(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		original := jsonMarshalIndent
		t.Cleanup(func() { jsonMarshalIndent = original })
		jsonMarshalIndent = func(any, string, string) ([]byte, error) {
			return nil, assert.AnError
		}

		err := SaveMasterSummary(BuildMasterSummary(nil), t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "marshal summary")
	})

	t.Run("write markdown", func(t *testing.T) {
		dir := t.TempDir()
		s := BuildMasterSummary(nil)
		ts := s.GeneratedAt.Format("20060102_150405")
		require.NoError(t, os.MkdirAll(
			filepath.Join(dir, "master_summary_"+ts+".md"), 0755,
		))

		err := SaveMasterSummary(s, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write Markdown summary")
	})

	t.Run("output dir", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		err := SaveMasterSummary(BuildMasterSummary(nil), file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create output directory")
	})
}

func TestSaveOutcomes(t *testing.T) {
	dir := t.TempDir()

	paths, err := SaveOutcomes(makeOutcomes(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "widget.json"),
		filepath.Join(dir, "widget.md"),
		filepath.Join(dir, "owner_contact.json"),
		filepath.Join(dir, "owner_contact.md"),
	}, paths)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}

func TestAppendToHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	for _, o := range makeOutcomes() {
		require.NoError(t, AppendToHistory(path, o, "/tmp/results"))
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []HistoricalEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e HistoricalEntry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())

	require.Len(t, entries, 2)
	assert.Equal(t, "widget", entries[0].Suite)
	assert.True(t, entries[0].Passed)
	assert.Equal(t, 2, entries[0].AssertionsPassed)
	assert.Equal(t, "2ms", entries[0].Duration)
	assert.Equal(t, "owner/contact", entries[1].Suite)
	assert.Equal(t, 1, entries[1].AssertionsPassed)
	assert.Equal(t, 3, entries[1].AssertionsTotal)
	assert.Equal(t, "/tmp/results", entries[1].ResultsPath)
}

func TestAppendToHistory_Errors(t *testing.T) {
	err := AppendToHistory(
		filepath.Join(t.TempDir(), "missing", "history.jsonl"),
		makeOutcomes()[0], "",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open history file")

	original := jsonMarshal
	t.Cleanup(func() { jsonMarshal = original })
	jsonMarshal = func(any) ([]byte, error) { return nil, assert.AnError }

	err = AppendToHistory(
		filepath.Join(t.TempDir(), "history.jsonl"), makeOutcomes()[0], "",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal history entry")
}

func TestReport_SkippedSuite(t *testing.T) {
	skipped := &suite.Outcome{
		Suite:      "dependent",
		StartedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Skipped:    true,
		SkipReason: `dependency "owner/contact" did not pass`,
	}
	outcomes := append(makeOutcomes(), skipped)

	s := BuildMasterSummary(outcomes)
	assert.Equal(t, 3, s.TotalSuites)
	assert.Equal(t, 1, s.PassedSuites)
	assert.Equal(t, 1, s.FailedSuites)
	assert.Equal(t, 1, s.SkippedSuites)
	assert.True(t, s.Suites[2].Skipped)

	md, err := NewMarkdownReporter().GenerateReport(skipped)
	require.NoError(t, err)
	assert.Contains(t, string(md), "**Status:** SKIPPED")
	assert.Contains(t, string(md), `**Skipped:** dependency "owner/contact" did not pass`)

	summaryMD := generateSummaryMarkdown(s)
	assert.Contains(t, summaryMD, "| dependent | SKIPPED |")
	assert.Contains(t, summaryMD, "| Skipped | 1 |")

	data, err := NewJSONReporter(false).GenerateMasterSummary(outcomes)
	require.NoError(t, err)
	var decoded jsonMasterSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.Skipped)
	assert.Equal(t, 1, decoded.Failed)
}
