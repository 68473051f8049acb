// Package aoc solves Advent of Code 2023 puzzles.
//
// Every day from 1 to 16 is registered with both parts and the example
// inputs published alongside the puzzle. Before a part runs against real
// input its examples are solved and compared with the published answers.
//
// Basic usage:
//
//	client, err := aoc.New(aoc.WithInputDir("inputs"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Solve day 5 part 2 using inputs/day05.txt
//	answer, err := client.Solve(ctx, 5, puzzle.PartTwo)
//	fmt.Println(answer.Value())
//
//	// Run the examples of every day
//	results, err := client.Check(ctx)
package aoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/helixml/aoc2023/application/service"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/infrastructure/input"
	"github.com/helixml/aoc2023/internal/log"
)

// ErrIncompletePuzzle indicates a registered puzzle is missing a part.
var ErrIncompletePuzzle = errors.New("puzzle does not implement both parts")

// Client is the main entry point for the aoc library.
type Client struct {
	registry *puzzle.Registry
	solver   *service.Solver
	inputs   input.Directory
	logger   *slog.Logger
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.Default().Slog()
	}

	client := &Client{
		registry: puzzle.NewRegistry(),
		inputs:   input.NewDirectory(cfg.inputDir),
		logger:   logger,
	}
	client.registerPuzzles(cfg.puzzles...)

	if !cfg.allowPartial {
		if err := client.validatePuzzles(); err != nil {
			return nil, err
		}
	}

	client.solver = service.NewSolver(client.registry, logger).WithSampleChecks(cfg.checkSamples)

	logger.Debug("aoc client created",
		slog.String("input_dir", client.inputs.Root()),
		slog.Int("puzzles", len(client.registry.Days())),
		slog.Bool("check_samples", cfg.checkSamples),
	)
	return client, nil
}

// Solve solves one part of a day using the input file for that day.
func (c *Client) Solve(ctx context.Context, day puzzle.Day, part puzzle.Part) (puzzle.Answer, error) {
	in, err := c.Input(day)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return c.solver.Solve(ctx, day, part, in)
}

// SolveInput solves one part of a day against the given input.
func (c *Client) SolveInput(ctx context.Context, day puzzle.Day, part puzzle.Part, in string) (puzzle.Answer, error) {
	return c.solver.Solve(ctx, day, part, in)
}

// SolveDay solves every part of a day using the input file for that day.
func (c *Client) SolveDay(ctx context.Context, day puzzle.Day) ([]puzzle.Answer, error) {
	in, err := c.Input(day)
	if err != nil {
		return nil, err
	}
	return c.solver.SolveAll(ctx, day, in)
}

// SolveDayInput solves every part of a day against the given input.
func (c *Client) SolveDayInput(ctx context.Context, day puzzle.Day, in string) ([]puzzle.Answer, error) {
	return c.solver.SolveAll(ctx, day, in)
}

// Check runs the examples of the given days, or of every registered day
// when none are given.
func (c *Client) Check(ctx context.Context, days ...puzzle.Day) ([]service.SampleResult, error) {
	if len(days) == 0 {
		days = c.registry.Days()
	}
	var results []service.SampleResult
	for _, day := range days {
		r, err := c.solver.Check(ctx, day)
		results = append(results, r...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Input loads the input file for a day from the input directory.
func (c *Client) Input(day puzzle.Day) (string, error) {
	if !day.Valid() {
		return "", fmt.Errorf("%w: %d", puzzle.ErrInvalidDay, int(day))
	}
	return c.inputs.Load(day)
}

// Puzzles returns the registered puzzles ordered by day.
func (c *Client) Puzzles() []puzzle.Puzzle {
	days := c.registry.Days()
	puzzles := make([]puzzle.Puzzle, 0, len(days))
	for _, d := range days {
		p, err := c.registry.Puzzle(d)
		if err != nil {
			continue
		}
		puzzles = append(puzzles, p)
	}
	return puzzles
}

// Latest returns the highest registered day.
func (c *Client) Latest() (puzzle.Day, bool) {
	return c.registry.Latest()
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// validatePuzzles checks that every registered puzzle implements both parts.
func (c *Client) validatePuzzles() error {
	var missing []string
	for _, p := range c.Puzzles() {
		if len(p.Implemented()) != len(puzzle.Parts()) {
			missing = append(missing, p.Day().String())
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: [%s]", ErrIncompletePuzzle, strings.Join(missing, ", "))
}
