// Package smoke runs every registered puzzle through the public client.
// Real inputs are solved too when AOC_INPUT_DIR points at a directory of
// puzzle inputs.
package smoke

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	aoc "github.com/helixml/aoc2023"
	"github.com/helixml/aoc2023/infrastructure/input"
)

func newClient(t *testing.T, opts ...aoc.Option) *aoc.Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client, err := aoc.New(append([]aoc.Option{aoc.WithLogger(logger)}, opts...)...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestSmoke_Samples(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	for _, p := range client.Puzzles() {
		t.Run(p.Day().String(), func(t *testing.T) {
			results, err := client.Check(ctx, p.Day())
			if err != nil {
				t.Fatalf("check failed: %v", err)
			}
			if len(results) == 0 {
				t.Fatal("expected at least one sample")
			}
			for _, r := range results {
				if !r.Passed() {
					t.Errorf("%s %q: got %d, want %d (err: %v)", r.Key, r.Name, r.Got, r.Want, r.Err)
				}
			}
		})
	}
}

func TestSmoke_Inputs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping real inputs in short mode")
	}
	dir := os.Getenv("AOC_INPUT_DIR")
	if dir == "" {
		t.Skip("AOC_INPUT_DIR not set")
	}

	client := newClient(t, aoc.WithInputDir(dir))
	ctx := context.Background()

	for _, p := range client.Puzzles() {
		t.Run(p.Day().String(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			answers, err := client.SolveDay(ctx, p.Day())
			if errors.Is(err, input.ErrNotFound) {
				t.Skip("no input")
			}
			if err != nil {
				t.Fatalf("solve failed: %v", err)
			}
			for _, a := range answers {
				t.Logf("%s: %d (%s)", a.Key(), a.Value(), a.Elapsed())
			}
		})
	}
}
