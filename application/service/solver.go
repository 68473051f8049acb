// Package service runs registered puzzles, checking their examples first.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/log"
)

// SampleResult is the outcome of running one published sample.
type SampleResult struct {
	Key     puzzle.Key
	Name    string
	Want    int
	Got     int
	Elapsed time.Duration
	Err     error
}

// Passed reports whether the solver produced the published answer.
func (r SampleResult) Passed() bool {
	return r.Err == nil && r.Got == r.Want
}

// Solver runs registered puzzles against inputs.
type Solver struct {
	registry     *puzzle.Registry
	logger       *slog.Logger
	checkSamples bool
}

// NewSolver creates a Solver over the registry. Samples are checked before
// every solve unless disabled with WithSampleChecks.
func NewSolver(registry *puzzle.Registry, logger *slog.Logger) *Solver {
	return &Solver{
		registry:     registry,
		logger:       logger,
		checkSamples: true,
	}
}

// WithSampleChecks enables or disables running samples before a solve.
func (s *Solver) WithSampleChecks(enabled bool) *Solver {
	s.checkSamples = enabled
	return s
}

// Solve runs one part of a day's puzzle against input.
// When sample checks are enabled the part's samples run first, and any
// disagreement is returned as ErrSampleMismatch without solving the input.
func (s *Solver) Solve(ctx context.Context, day puzzle.Day, part puzzle.Part, input string) (puzzle.Answer, error) {
	if !day.Valid() {
		return puzzle.Answer{}, fmt.Errorf("%w: %d", puzzle.ErrInvalidDay, int(day))
	}
	if !part.Valid() {
		return puzzle.Answer{}, fmt.Errorf("%w: %d", puzzle.ErrInvalidPart, int(part))
	}
	if strings.TrimSpace(input) == "" {
		return puzzle.Answer{}, fmt.Errorf("%w: %s", ErrEmptyInput, day)
	}

	p, err := s.registry.Puzzle(day)
	if err != nil {
		return puzzle.Answer{}, err
	}
	solve, err := p.Solver(part)
	if err != nil {
		return puzzle.Answer{}, err
	}

	key := puzzle.Key{Day: day, Part: part}
	ctx = log.WithPuzzle(ctx, key.String())

	checked := 0
	if s.checkSamples {
		for _, sample := range p.SamplesFor(part) {
			result, err := s.runSample(ctx, key, solve, sample)
			if err != nil {
				return puzzle.Answer{}, err
			}
			if !result.Passed() {
				return puzzle.Answer{}, mismatch(result)
			}
			checked++
		}
	}

	if err := ctx.Err(); err != nil {
		return puzzle.Answer{}, err
	}

	start := time.Now()
	value, err := solve(input)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.ErrorContext(ctx, "solve failed", slog.String("error", err.Error()))
		return puzzle.Answer{}, fmt.Errorf("solve %s: %w", key, err)
	}

	s.logger.InfoContext(ctx, "solved",
		slog.Int("answer", value),
		slog.Duration("elapsed", elapsed),
		slog.Int("samples", checked),
	)
	return puzzle.NewAnswer(key, value, elapsed, checked), nil
}

// SolveAll runs every implemented part of a day against the same input.
func (s *Solver) SolveAll(ctx context.Context, day puzzle.Day, input string) ([]puzzle.Answer, error) {
	p, err := s.registry.Puzzle(day)
	if err != nil {
		return nil, err
	}
	answers := make([]puzzle.Answer, 0, 2)
	for _, part := range p.Implemented() {
		a, err := s.Solve(ctx, day, part, input)
		if err != nil {
			return answers, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

// Check runs every sample of a day and reports each result. Solver failures
// and wrong answers are recorded in the results rather than returned.
func (s *Solver) Check(ctx context.Context, day puzzle.Day) ([]SampleResult, error) {
	p, err := s.registry.Puzzle(day)
	if err != nil {
		return nil, err
	}

	var results []SampleResult
	for _, part := range p.Implemented() {
		solve, err := p.Solver(part)
		if err != nil {
			return results, err
		}
		key := puzzle.Key{Day: day, Part: part}
		pctx := log.WithPuzzle(ctx, key.String())
		for _, sample := range p.SamplesFor(part) {
			result, err := s.runSample(pctx, key, solve, sample)
			if err != nil {
				return results, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}

func (s *Solver) runSample(ctx context.Context, key puzzle.Key, solve puzzle.Solver, sample puzzle.Sample) (SampleResult, error) {
	if err := ctx.Err(); err != nil {
		return SampleResult{}, err
	}

	start := time.Now()
	got, err := solve(sample.Input())
	result := SampleResult{
		Key:     key,
		Name:    sample.Name(),
		Want:    sample.Want(),
		Got:     got,
		Elapsed: time.Since(start),
		Err:     err,
	}

	if result.Passed() {
		s.logger.DebugContext(ctx, "sample passed",
			slog.String("sample", sample.Name()),
			slog.Int("answer", got),
		)
	} else {
		s.logger.WarnContext(ctx, "sample failed",
			slog.String("sample", sample.Name()),
			slog.Int("want", sample.Want()),
			slog.Int("got", got),
		)
	}
	return result, nil
}

func mismatch(r SampleResult) error {
	if r.Err != nil {
		return fmt.Errorf("%w: %s sample %q: %w", puzzle.ErrSampleMismatch, r.Key, r.Name, r.Err)
	}
	return fmt.Errorf("%w: %s sample %q: got %d, want %d", puzzle.ErrSampleMismatch, r.Key, r.Name, r.Got, r.Want)
}
