package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"digital.vasic.expectations/pkg/httpclient"
	"digital.vasic.expectations/pkg/logging"
	"digital.vasic.expectations/pkg/report"
	"digital.vasic.expectations/pkg/suite"
)

type checkFlags struct {
	suitePath   string
	dataPath    string
	format      string
	reportDir   string
	historyFile string
	metricsFile string
	envelope    bool
	headers     []string
	timeout     time.Duration
}

func newCheckCmd(a *app) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate suites against a JSON document",
		Long: `Evaluate every suite in a file or directory against a JSON
document. Each assertion target is a gjson path into the document.
The document may be a file, "-" for stdin, or an http(s) URL. With
--envelope a fetched document is wrapped as
{"url", "status", "headers", "body"}.

Suites run in dependency order; a suite whose dependency fails is
skipped.

Examples:
  expectctl check --suite api.yaml --data response.json
  curl -s localhost:8080/items | expectctl check -s suites/ -d -
  expectctl check -s api.yaml -d http://localhost:8080/items --envelope`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.resolveCheckFlags(cmd, flags)
			return a.check(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.suitePath, "suite", "s", "", "suite file or directory (required)")
	f.StringVarP(&flags.dataPath, "data", "d", "", `JSON document to check: file, URL or "-" for stdin (required)`)
	f.StringVar(&flags.format, "format", "console", "output format: console or json")
	f.StringVar(&flags.reportDir, "report-dir", "", "write JSON and Markdown reports to this directory")
	f.StringVar(&flags.historyFile, "history", "", "append one JSON line per suite run to this file")
	f.StringVar(&flags.metricsFile, "metrics-file", "", "write assertion counters in Prometheus text format")
	f.BoolVar(&flags.envelope, "envelope", false, "wrap a fetched document with its status and headers")
	f.StringArrayVarP(&flags.headers, "header", "H", nil, `request header "Key: Value" for URL data`)
	f.DurationVar(&flags.timeout, "timeout", 30*time.Second, "request timeout for URL data")
	_ = cmd.MarkFlagRequired("suite")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (a *app) resolveCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	fs := cmd.Flags()
	if !fs.Changed("format") {
		flags.format = a.env.GetWithDefault("FORMAT", flags.format)
	}
	if !fs.Changed("report-dir") {
		flags.reportDir = a.env.GetWithDefault("REPORT_DIR", flags.reportDir)
	}
	if !fs.Changed("history") {
		flags.historyFile = a.env.GetWithDefault("HISTORY_FILE", flags.historyFile)
	}
	if !fs.Changed("metrics-file") {
		flags.metricsFile = a.env.GetWithDefault("METRICS_FILE", flags.metricsFile)
	}
}

func (a *app) check(cmd *cobra.Command, flags *checkFlags) error {
	if flags.format != "console" && flags.format != "json" {
		return withCode(ExitUsageError, fmt.Errorf("unknown format %q", flags.format))
	}

	collection, err := suite.Load(flags.suitePath)
	if err != nil {
		return withCode(ExitParseError, err)
	}
	if collection.Count() == 0 {
		return withCode(ExitParseError, fmt.Errorf("no suites found in %s", flags.suitePath))
	}
	suites, err := collection.Ordered()
	if err != nil {
		return withCode(ExitParseError, err)
	}

	var doc []byte
	if httpclient.IsURL(flags.dataPath) {
		doc, err = a.fetchData(cmd.Context(), flags)
	} else {
		doc, err = readData(cmd.InOrStdin(), flags.dataPath)
	}
	if err != nil {
		return withCode(ExitParseError, err)
	}
	if !gjson.ValidBytes(doc) {
		return withCode(ExitParseError, fmt.Errorf("%s is not valid JSON", flags.dataPath))
	}

	a.logger.Debug("running suites",
		logging.LogField("suites", len(suites)),
		logging.StringField("data", flags.dataPath),
	)
	outcomes := suite.RunAll(a.engine, suites, doc)

	switch flags.format {
	case "json":
		data, err := report.NewJSONReporter(true).GenerateMasterSummary(outcomes)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	default:
		printOutcomes(cmd.OutOrStdout(), outcomes, a.verbose)
	}

	if err := a.writeArtifacts(outcomes, flags); err != nil {
		return withCode(ExitConfigError, err)
	}

	failed := 0
	for _, o := range outcomes {
		if !o.Passed {
			failed++
		}
	}
	if failed > 0 {
		return withCode(ExitTestFailure, fmt.Errorf(
			"%d of %d suites did not pass", failed, len(outcomes),
		))
	}
	return nil
}

// fetchData GETs the document at flags.dataPath. Without --envelope a
// non-2xx status is an error.
func (a *app) fetchData(ctx context.Context, flags *checkFlags) ([]byte, error) {
	opts := []httpclient.ClientOption{httpclient.WithTimeout(flags.timeout)}
	if token := a.env.Get("TOKEN"); token != "" {
		opts = append(opts, httpclient.WithToken(token))
	}
	for _, h := range flags.headers {
		key, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid header %q, want \"Key: Value\"", h)
		}
		opts = append(opts, httpclient.WithHeader(
			strings.TrimSpace(key), strings.TrimSpace(value),
		))
	}

	resp, err := httpclient.NewClient(opts...).Fetch(ctx, flags.dataPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("fetched document",
		logging.StringField("url", flags.dataPath),
		logging.LogField("status", resp.StatusCode),
		logging.LogField("bytes", len(resp.Body)),
	)

	if flags.envelope {
		return resp.Envelope()
	}
	if !resp.OK() {
		return nil, fmt.Errorf(
			"GET %s returned HTTP %d", flags.dataPath, resp.StatusCode,
		)
	}
	return resp.Body, nil
}

func readData(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return data, nil
}

// writeArtifacts writes reports, history and metrics requested by
// flags.
func (a *app) writeArtifacts(outcomes []*suite.Outcome, flags *checkFlags) error {
	if flags.reportDir != "" {
		paths, err := report.SaveOutcomes(outcomes, flags.reportDir)
		if err != nil {
			return err
		}
		if err := report.SaveMasterSummary(
			report.BuildMasterSummary(outcomes), flags.reportDir,
		); err != nil {
			return err
		}
		a.logger.Info("reports written",
			logging.StringField("dir", flags.reportDir),
			logging.LogField("files", len(paths)),
		)
	}

	if flags.historyFile != "" {
		for _, o := range outcomes {
			if err := report.AppendToHistory(
				flags.historyFile, o, flags.reportDir,
			); err != nil {
				return err
			}
		}
	}

	if flags.metricsFile != "" {
		if dir := filepath.Dir(flags.metricsFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create metrics directory: %w", err)
			}
		}
		if err := prometheus.WriteToTextfile(
			flags.metricsFile, a.metrics.Registry(),
		); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func printOutcomes(w io.Writer, outcomes []*suite.Outcome, verbose bool) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	passedSuites, skippedSuites := 0, 0
	for _, o := range outcomes {
		if o.Skipped {
			skippedSuites++
			fmt.Fprintf(w, "%s %s: %s\n",
				yellow("SKIP"), bold(o.Suite), o.SkipReason,
			)
			continue
		}

		passed := 0
		for _, r := range o.Results {
			if r.Passed {
				passed++
			}
		}

		status := red("FAIL")
		if o.Passed {
			status = green("PASS")
			passedSuites++
		}
		fmt.Fprintf(w, "%s %s (%d/%d) %v\n",
			status, bold(o.Suite), passed, len(o.Results),
			o.Duration.Round(time.Microsecond),
		)

		for _, r := range o.Results {
			switch {
			case r.Passed && verbose:
				fmt.Fprintf(w, "  %s %s: %s\n", green("✓"), r.Target, r.Message)
			case r.TypeMismatch:
				fmt.Fprintf(w, "  %s %s: %s\n", yellow("!"), r.Target, r.Message)
			case !r.Passed:
				fmt.Fprintf(w, "  %s %s: %s\n", red("✗"), r.Target, r.Message)
			}
		}
	}

	failed := len(outcomes) - passedSuites - skippedSuites
	fmt.Fprintf(w, "\n%d suites: %s, %s",
		len(outcomes),
		green(fmt.Sprintf("%d passed", passedSuites)),
		red(fmt.Sprintf("%d failed", failed)),
	)
	if skippedSuites > 0 {
		fmt.Fprintf(w, ", %s", yellow(fmt.Sprintf("%d skipped", skippedSuites)))
	}
	fmt.Fprintln(w)
}
