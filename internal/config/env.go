package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the AOC_ prefix.
type EnvConfig struct {
	// InputDir is the directory holding puzzle inputs.
	// Env: AOC_INPUT_DIR (default: inputs)
	InputDir string `envconfig:"INPUT_DIR" default:"inputs"`

	// LogLevel is the log verbosity level.
	// Env: AOC_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: AOC_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// OutputFormat is the answer output format (text, json or yaml).
	// Env: AOC_OUTPUT_FORMAT (default: text)
	OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"text"`

	// CheckSamples runs the embedded samples before the real input.
	// Env: AOC_CHECK_SAMPLES (default: true)
	CheckSamples bool `envconfig:"CHECK_SAMPLES" default:"true"`
}

// LoadFromEnv loads configuration from AOC_ prefixed environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(DefaultEnvPrefix)
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "PUZZLE" would read PUZZLE_INPUT_DIR.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.InputDir != "" {
		cfg = applyOption(cfg, WithInputDir(e.InputDir))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.OutputFormat != "" {
		cfg = applyOption(cfg, WithOutputFormat(strings.ToLower(e.OutputFormat)))
	}
	cfg = applyOption(cfg, WithCheckSamples(e.CheckSamples))

	return cfg
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
