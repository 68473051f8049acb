// Package parse provides strict helpers for splitting and reading puzzle input.
//
// Every failure wraps puzzle.ErrMalformedInput so callers can test with errors.Is.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
)

// Normalize converts CRLF line endings and strips trailing whitespace.
func Normalize(input string) string {
	return strings.TrimRight(strings.ReplaceAll(input, "\r\n", "\n"), " \t\n\r")
}

// Lines returns the non-trailing lines of the input.
// An empty input yields no lines.
func Lines(input string) []string {
	s := Normalize(input)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits the input on blank lines and returns the lines of each block.
func Blocks(input string) [][]string {
	s := Normalize(input)
	if s == "" {
		return nil
	}
	var blocks [][]string
	for _, chunk := range strings.Split(s, "\n\n") {
		blocks = append(blocks, strings.Split(chunk, "\n"))
	}
	return blocks
}

// Int parses a single base-10 integer.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Errorf("not an integer: %q", s)
	}
	return n, nil
}

// Ints parses whitespace-separated integers.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Int(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// IntsSep parses integers separated by sep, e.g. "1,1,3".
func IntsSep(s, sep string) ([]int, error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := Int(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Cut splits s around sep and fails when sep is absent.
func Cut(s, sep string) (string, string, error) {
	before, after, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", Errorf("missing %q in %q", sep, s)
	}
	return before, after, nil
}

// Errorf returns an error wrapping puzzle.ErrMalformedInput.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", puzzle.ErrMalformedInput, fmt.Sprintf(format, args...))
}
