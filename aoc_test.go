package aoc_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	aoc "github.com/helixml/aoc2023"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/infrastructure/input"
	"github.com/helixml/aoc2023/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyInput = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newClient(t *testing.T, opts ...aoc.Option) (*aoc.Client, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day09.txt"), []byte(historyInput), 0o644))

	opts = append([]aoc.Option{aoc.WithInputDir(dir), aoc.WithLogger(testLogger())}, opts...)
	client, err := aoc.New(opts...)
	require.NoError(t, err)
	return client, dir
}

func TestClient_Puzzles(t *testing.T) {
	client, _ := newClient(t)

	puzzles := client.Puzzles()
	require.Len(t, puzzles, 16)
	for i, p := range puzzles {
		assert.Equal(t, puzzle.Day(i+1), p.Day())
		assert.NotEmpty(t, p.Title())
		assert.Equal(t, puzzle.Parts(), p.Implemented(), p.Day().String())
	}

	latest, ok := client.Latest()
	require.True(t, ok)
	assert.Equal(t, puzzle.Day(16), latest)
}

func TestClient_Solve(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	answer, err := client.Solve(ctx, 9, puzzle.PartOne)
	require.NoError(t, err)
	assert.Equal(t, 114, answer.Value())
	assert.Equal(t, 1, answer.SamplesChecked())

	answers, err := client.SolveDay(ctx, 9)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, 2, answers[1].Value())
}

func TestClient_Solve_FallbackFileName(t *testing.T) {
	client, dir := newClient(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "15.input"), []byte("rn=1,cm-\n"), 0o644))

	answer, err := client.Solve(context.Background(), 15, puzzle.PartOne)
	require.NoError(t, err)
	assert.Equal(t, 30+253, answer.Value())
}

func TestClient_Solve_MissingInput(t *testing.T) {
	client, _ := newClient(t)

	_, err := client.Solve(context.Background(), 4, puzzle.PartOne)
	assert.ErrorIs(t, err, input.ErrNotFound)

	_, err = client.SolveDay(context.Background(), 4)
	assert.ErrorIs(t, err, input.ErrNotFound)

	_, err = client.Solve(context.Background(), 0, puzzle.PartOne)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDay)
}

func TestClient_SolveInput(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	answer, err := client.SolveInput(ctx, 6, puzzle.PartTwo, "Time: 7 15 30\nDistance: 9 40 200\n")
	require.NoError(t, err)
	assert.Equal(t, 71503, answer.Value())

	answers, err := client.SolveDayInput(ctx, 9, historyInput)
	require.NoError(t, err)
	assert.Len(t, answers, 2)
}

func TestClient_Check(t *testing.T) {
	client, _ := newClient(t)

	results, err := client.Check(context.Background(), 3, 4)
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.True(t, r.Passed(), "%s %s", r.Key, r.Name)
	}
	assert.Equal(t, puzzle.Day(4), results[3].Key.Day)
}

func TestClient_Check_UnknownDay(t *testing.T) {
	client, _ := newClient(t)

	_, err := client.Check(context.Background(), 17)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestClient_WithPuzzles(t *testing.T) {
	echo := func(in string) (int, error) { return len(strings.TrimSpace(in)), nil }
	extra := puzzle.New(17, "Extra", echo, echo,
		puzzle.NewSample(puzzle.PartOne, "three", "abc", 3),
	)
	client, _ := newClient(t, aoc.WithPuzzles(extra))

	answer, err := client.SolveInput(context.Background(), 17, puzzle.PartOne, "abcd")
	require.NoError(t, err)
	assert.Equal(t, 4, answer.Value())
}

func TestClient_IncompletePuzzle(t *testing.T) {
	half := puzzle.New(20, "Half", func(string) (int, error) { return 1, nil }, nil)

	_, err := aoc.New(aoc.WithLogger(testLogger()), aoc.WithPuzzles(half))
	require.ErrorIs(t, err, aoc.ErrIncompletePuzzle)
	assert.Contains(t, err.Error(), "day20")

	client, err := aoc.New(aoc.WithLogger(testLogger()), aoc.WithPuzzles(half), aoc.WithPartialPuzzles())
	require.NoError(t, err)
	assert.Len(t, client.Puzzles(), 17)
}

func TestClient_WithConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day09.txt"), []byte(historyInput), 0o644))

	cfg := config.NewAppConfigWithOptions(
		config.WithInputDir(dir),
		config.WithCheckSamples(false),
	)
	client, err := aoc.New(aoc.WithConfig(cfg), aoc.WithLogger(testLogger()))
	require.NoError(t, err)

	answer, err := client.Solve(context.Background(), 9, puzzle.PartTwo)
	require.NoError(t, err)
	assert.Equal(t, 2, answer.Value())
	assert.Equal(t, 0, answer.SamplesChecked())
}
