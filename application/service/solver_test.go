package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/helixml/aoc2023/application/solution/day01"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func countLines(input string) (int, error) {
	return len(strings.Split(strings.TrimSpace(input), "\n")), nil
}

func countWords(input string) (int, error) {
	return len(strings.Fields(input)), nil
}

// testRegistry holds day 1 and two synthetic days: day 2 has a wrong sample,
// day 3 implements only part one.
func testRegistry() *puzzle.Registry {
	r := puzzle.NewRegistry()
	r.Register(day01.Puzzle())
	r.Register(puzzle.New(2, "Wrong Sample", countLines, countWords,
		puzzle.NewSample(puzzle.PartOne, "lines", "a b\nc\n", 2),
		puzzle.NewSample(puzzle.PartTwo, "words", "a b\nc\n", 4),
	))
	r.Register(puzzle.New(3, "Half Done", countWords, nil,
		puzzle.NewSample(puzzle.PartOne, "words", "a b c", 3),
	))
	return r
}

func TestSolver_Solve(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger())

	answer, err := s.Solve(context.Background(), 2, puzzle.PartOne, "x\ny\nz\n")
	require.NoError(t, err)
	assert.Equal(t, 3, answer.Value())
	assert.Equal(t, puzzle.Key{Day: 2, Part: puzzle.PartOne}, answer.Key())
	assert.Equal(t, 1, answer.SamplesChecked())
	assert.GreaterOrEqual(t, answer.Elapsed().Nanoseconds(), int64(0))
}

func TestSolver_Solve_RealPuzzle(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger())

	answer, err := s.Solve(context.Background(), 1, puzzle.PartTwo, "two1nine\neightwothree\n")
	require.NoError(t, err)
	assert.Equal(t, 29+83, answer.Value())
	assert.Equal(t, 1, answer.SamplesChecked())
}

func TestSolver_Solve_SampleMismatch(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger())

	_, err := s.Solve(context.Background(), 2, puzzle.PartTwo, "one two")
	require.ErrorIs(t, err, puzzle.ErrSampleMismatch)
	assert.Contains(t, err.Error(), "got 3, want 4")
	assert.Contains(t, err.Error(), "day02/part2")
}

func TestSolver_Solve_SampleChecksDisabled(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger()).WithSampleChecks(false)

	answer, err := s.Solve(context.Background(), 2, puzzle.PartTwo, "one two")
	require.NoError(t, err)
	assert.Equal(t, 2, answer.Value())
	assert.Equal(t, 0, answer.SamplesChecked())
}

func TestSolver_Solve_Errors(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger())
	ctx := context.Background()

	tests := []struct {
		name  string
		day   puzzle.Day
		part  puzzle.Part
		input string
		want  error
	}{
		{"invalid day", 26, puzzle.PartOne, "x", puzzle.ErrInvalidDay},
		{"invalid part", 2, 3, "x", puzzle.ErrInvalidPart},
		{"empty input", 2, puzzle.PartOne, " \n\n", ErrEmptyInput},
		{"unknown day", 9, puzzle.PartOne, "x", puzzle.ErrUnknownDay},
		{"not implemented", 3, puzzle.PartTwo, "x", puzzle.ErrPartNotImplemented},
		{"malformed", 1, puzzle.PartOne, "abc\n", puzzle.ErrMalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Solve(ctx, tt.day, tt.part, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSolver_Solve_Cancelled(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Solve(ctx, 2, puzzle.PartOne, "x")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.WithSampleChecks(false).Solve(ctx, 2, puzzle.PartOne, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolver_SolveAll(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger())

	answers, err := s.SolveAll(context.Background(), 3, "a b c d")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 4, answers[0].Value())

	answers, err = s.SolveAll(context.Background(), 2, "a b")
	require.ErrorIs(t, err, puzzle.ErrSampleMismatch)
	require.Len(t, answers, 1, "part one should still be answered")
	assert.Equal(t, 1, answers[0].Value())
}

func TestSolver_Check(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger())

	results, err := s.Check(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].Passed())
	assert.Equal(t, "lines", results[0].Name)
	assert.Equal(t, puzzle.PartOne, results[0].Key.Part)

	assert.False(t, results[1].Passed())
	assert.Equal(t, 4, results[1].Want)
	assert.Equal(t, 3, results[1].Got)
}

func TestSolver_Check_UnknownDay(t *testing.T) {
	s := NewSolver(testRegistry(), testLogger())

	_, err := s.Check(context.Background(), 20)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestSampleResult_Passed(t *testing.T) {
	assert.True(t, SampleResult{Want: 4, Got: 4}.Passed())
	assert.False(t, SampleResult{Want: 4, Got: 3}.Passed())
	assert.False(t, SampleResult{Want: 0, Got: 0, Err: errors.New("boom")}.Passed())
}
