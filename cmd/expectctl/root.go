package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"digital.vasic.expectations/pkg/assertion"
	"digital.vasic.expectations/pkg/env"
	"digital.vasic.expectations/pkg/logging"
	"digital.vasic.expectations/pkg/metrics"
	"digital.vasic.expectations/pkg/plugin"
)

var version = "dev"

// envPrefix namespaces every environment variable expectctl reads.
const envPrefix = "EXPECTCTL_"

type globalFlags struct {
	envFile   string
	logFormat string
	logLevel  string
	logDir    string
	schemaDir string
	plugins   []string
	verbose   bool
}

// app holds what a command needs once flags and environment are
// resolved.
type app struct {
	env     *env.DefaultLoader
	logger  logging.Logger
	metrics *metrics.PrometheusMetrics
	engine  *assertion.DefaultEngine
	plugins *plugin.Registry
	verbose bool
}

func newRootCmd(a *app) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "expectctl",
		Short: "Run declarative assertion suites against JSON documents",
		Long: `expectctl evaluates suites of assertions such as
"count should be_greater_than 2" against a JSON document.

Settings are read from flags, then EXPECTCTL_* environment
variables, then a .env file.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", ".env", "dotenv file to read settings from")
	pf.StringVar(&flags.logFormat, "log-format", "console", "log format: console or json")
	pf.StringVar(&flags.logLevel, "log-level", "info", "JSON log level: debug, info, warn or error")
	pf.StringVar(&flags.logDir, "log-dir", "", "also write JSON logs to expectctl.log in this directory")
	pf.StringVar(&flags.schemaDir, "schema-dir", "", "directory relative match_schema paths resolve against")
	pf.StringSliceVar(&flags.plugins, "plugins", pluginNames(plugin.Builtin()), "plugins to load")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "show passing assertions and debug logs")

	cmd.AddCommand(newCheckCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newVerbsCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup resolves settings with flags taking precedence over the
// environment and builds the engine with the selected plugins.
func (a *app) setup(cmd *cobra.Command, flags *globalFlags) error {
	a.env = env.NewLoaderWithPrefix(envPrefix)
	if err := loadEnvFile(a.env, flags.envFile, cmd.Flags().Changed("env-file")); err != nil {
		return withCode(ExitConfigError, err)
	}

	fs := cmd.Flags()
	if !fs.Changed("verbose") {
		flags.verbose = a.env.GetBool("VERBOSE", false)
	}
	if !fs.Changed("log-format") {
		flags.logFormat = a.env.GetWithDefault("LOG_FORMAT", flags.logFormat)
	}
	if !fs.Changed("log-level") {
		flags.logLevel = a.env.GetWithDefault("LOG_LEVEL", flags.logLevel)
	}
	if !fs.Changed("log-dir") {
		flags.logDir = a.env.GetWithDefault("LOG_DIR", flags.logDir)
	}
	if !fs.Changed("schema-dir") {
		flags.schemaDir = a.env.GetWithDefault("SCHEMA_DIR", flags.schemaDir)
	}
	if !fs.Changed("plugins") {
		if list := a.env.GetList("PLUGINS"); len(list) > 0 {
			flags.plugins = list
		}
	}
	a.verbose = flags.verbose

	console, err := newLogger(cmd.ErrOrStderr(), flags.logFormat, flags.logLevel, flags.verbose)
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	a.logger = console

	// Per-assertion logs go to the console only when verbose; the
	// log file always receives them.
	var engineLogger logging.Logger = logging.NullLogger{}
	if flags.verbose {
		engineLogger = console
	}
	if flags.logDir != "" {
		fileLogger, err := logging.SetupLogging(flags.logDir, flags.verbose)
		if err != nil {
			return withCode(ExitConfigError, err)
		}
		a.logger = logging.NewMultiLogger(console, fileLogger)
		if flags.verbose {
			engineLogger = a.logger
		} else {
			engineLogger = fileLogger
		}
	}

	a.metrics = metrics.NewPrometheusMetrics("expectctl")
	a.engine = assertion.NewEngine(
		assertion.WithLogger(engineLogger),
		assertion.WithMetrics(a.metrics),
	)

	selected, err := selectPlugins(flags.plugins)
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	a.plugins = plugin.NewRegistry()
	err = plugin.NewLoader(a.plugins).LoadAndInit(selected, &plugin.PluginContext{
		Matchers: a.engine.Registry(),
		Config:   map[string]any{plugin.ConfigSchemaDir: flags.schemaDir},
		Logger:   a.logger,
	})
	if err != nil {
		return withCode(ExitConfigError, err)
	}

	a.logger.Debug("expectctl configured",
		logging.StringField("log_format", flags.logFormat),
		logging.StringField("plugins", strings.Join(a.plugins.List(), ",")),
	)
	return nil
}

// close closes the loggers opened by setup.
func (a *app) close() error {
	if a.logger == nil {
		return nil
	}
	return a.logger.Close()
}

// loadEnvFile reads path if it exists. A missing file is an error
// only when it was named explicitly.
func loadEnvFile(l *env.DefaultLoader, path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if explicit {
			return fmt.Errorf("env file: %w", err)
		}
		return nil
	}
	return l.Load(path)
}

func newLogger(w io.Writer, format, levelName string, verbose bool) (logging.Logger, error) {
	switch strings.ToLower(format) {
	case "", "console":
		return logging.NewConsoleLoggerTo(w, verbose), nil
	case "json":
		level := logging.ParseLevel(levelName)
		if verbose {
			level = logging.LevelDebug
		}
		return logging.NewJSONLoggerTo(w, level, map[string]any{
			"app": "expectctl",
		}), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

func pluginNames(plugins []plugin.Plugin) []string {
	names := make([]string, 0, len(plugins))
	for _, p := range plugins {
		names = append(names, p.Name())
	}
	return names
}

// selectPlugins picks built-in plugins by name.
func selectPlugins(names []string) ([]plugin.Plugin, error) {
	available := make(map[string]plugin.Plugin)
	for _, p := range plugin.Builtin() {
		available[p.Name()] = p
	}

	selected := make([]plugin.Plugin, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || name == "none" {
			continue
		}
		p, ok := available[name]
		if !ok {
			return nil, fmt.Errorf("unknown plugin %q", name)
		}
		selected = append(selected, p)
	}
	return selected, nil
}
