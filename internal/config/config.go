// Package config provides application configuration.
package config

import (
	"log/slog"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultEnvPrefix    = "AOC"
	DefaultInputDir     = "inputs"
	DefaultLogLevel     = "INFO"
	DefaultOutputFormat = "text"
	DefaultCheckSamples = true
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig holds the main application configuration.
type AppConfig struct {
	inputDir     string
	logLevel     string
	logFormat    LogFormat
	outputFormat string
	checkSamples bool
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		inputDir:     DefaultInputDir,
		logLevel:     DefaultLogLevel,
		logFormat:    LogFormatPretty,
		outputFormat: DefaultOutputFormat,
		checkSamples: DefaultCheckSamples,
	}
}

// InputDir returns the directory holding the puzzle inputs.
func (c AppConfig) InputDir() string { return c.inputDir }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// OutputFormat returns the answer output format name.
func (c AppConfig) OutputFormat() string { return c.outputFormat }

// CheckSamples reports whether samples run before the real input.
func (c AppConfig) CheckSamples() bool { return c.checkSamples }

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithInputDir sets the input directory.
func WithInputDir(dir string) AppConfigOption {
	return func(c *AppConfig) { c.inputDir = filepath.Clean(dir) }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithOutputFormat sets the answer output format.
func WithOutputFormat(format string) AppConfigOption {
	return func(c *AppConfig) { c.outputFormat = format }
}

// WithCheckSamples enables or disables sample checks.
func WithCheckSamples(enabled bool) AppConfigOption {
	return func(c *AppConfig) { c.checkSamples = enabled }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("input_dir", c.inputDir),
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.String("output_format", c.outputFormat),
		slog.Bool("check_samples", c.checkSamples),
	}
}
