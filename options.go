package aoc

import (
	"log/slog"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/config"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	inputDir     string
	logger       *slog.Logger
	checkSamples bool
	allowPartial bool
	puzzles      []puzzle.Puzzle
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		inputDir:     config.DefaultInputDir,
		checkSamples: config.DefaultCheckSamples,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithConfig applies the input directory and sample checking from cfg.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) {
		c.inputDir = cfg.InputDir()
		c.checkSamples = cfg.CheckSamples()
	}
}

// WithInputDir sets the directory holding day05.txt style input files.
func WithInputDir(dir string) Option {
	return func(c *clientConfig) {
		c.inputDir = dir
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithSampleChecks enables or disables solving the examples before a part
// runs against real input.
func WithSampleChecks(enabled bool) Option {
	return func(c *clientConfig) {
		c.checkSamples = enabled
	}
}

// WithPuzzles registers additional puzzles. A puzzle for a day that is
// already registered replaces it.
func WithPuzzles(puzzles ...puzzle.Puzzle) Option {
	return func(c *clientConfig) {
		c.puzzles = append(c.puzzles, puzzles...)
	}
}

// WithPartialPuzzles allows puzzles that implement only one part.
func WithPartialPuzzles() Option {
	return func(c *clientConfig) {
		c.allowPartial = true
	}
}
