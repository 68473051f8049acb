// Package main is the entry point for the aoc CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	aoc "github.com/helixml/aoc2023"
	"github.com/helixml/aoc2023/infrastructure/report"
	"github.com/helixml/aoc2023/internal/config"
	"github.com/helixml/aoc2023/internal/log"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand and override the environment.
type globalFlags struct {
	envFile   string
	inputDir  string
	logLevel  string
	logFormat string
	format    string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 solver",
		Long: `Solve Advent of Code 2023 puzzles and check them against the published examples.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  AOC_INPUT_DIR      Directory holding day05.txt or 5.input files (default: inputs)
  AOC_LOG_LEVEL      Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  AOC_LOG_FORMAT     Log format: pretty, json (default: pretty)
  AOC_OUTPUT_FORMAT  Answer format: text, json, yaml (default: text)
  AOC_CHECK_SAMPLES  Solve the examples before real input (default: true)`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	pf.StringVar(&flags.inputDir, "input-dir", "", "Directory holding puzzle inputs")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: pretty, json")
	pf.StringVarP(&flags.format, "format", "f", "", "Output format: text, json, yaml")

	cmd.AddCommand(solveCmd(flags))
	cmd.AddCommand(checkCmd(flags))
	cmd.AddCommand(listCmd(flags))
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables,
// then applies flag overrides.
func loadConfig(flags *globalFlags) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(flags.envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	var overrides []config.AppConfigOption
	if flags.inputDir != "" {
		overrides = append(overrides, config.WithInputDir(flags.inputDir))
	}
	if flags.logLevel != "" {
		overrides = append(overrides, config.WithLogLevel(flags.logLevel))
	}
	if flags.logFormat != "" {
		format, err := parseLogFormat(flags.logFormat)
		if err != nil {
			return config.AppConfig{}, err
		}
		overrides = append(overrides, config.WithLogFormat(format))
	}
	if flags.format != "" {
		overrides = append(overrides, config.WithOutputFormat(flags.format))
	}
	return cfg.Apply(overrides...), nil
}

func parseLogFormat(s string) (config.LogFormat, error) {
	switch config.LogFormat(s) {
	case config.LogFormatPretty, config.LogFormatJSON:
		return config.LogFormat(s), nil
	}
	return "", fmt.Errorf("unknown log format %q: want pretty or json", s)
}

// session is the state shared by a single command invocation.
type session struct {
	ctx     context.Context
	cfg     config.AppConfig
	logger  *log.Logger
	client  *aoc.Client
	encoder *report.Encoder
}

// newSession loads configuration, sets up logging tagged with a fresh run ID,
// and builds the client and output encoder.
func newSession(ctx context.Context, flags *globalFlags, out io.Writer, extra ...aoc.Option) (*session, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(cfg.OutputFormat())
	if err != nil {
		return nil, err
	}

	logger := log.Configure(cfg)
	ctx = log.WithRunID(ctx, uuid.NewString())
	logger.Slog().DebugContext(ctx, "configuration loaded", attrsToArgs(cfg)...)

	opts := append([]aoc.Option{
		aoc.WithConfig(cfg),
		aoc.WithLogger(logger.Slog()),
	}, extra...)
	client, err := aoc.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &session{
		ctx:     ctx,
		cfg:     cfg,
		logger:  logger,
		client:  client,
		encoder: report.NewEncoder(out, format),
	}, nil
}

func attrsToArgs(cfg config.AppConfig) []any {
	attrs := cfg.LogAttrs()
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return args
}
