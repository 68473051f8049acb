// Package day13 solves "Point of Incidence".
package day13

import (
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 13.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(13, "Point of Incidence", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 405),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 400),
	)
}

// Pattern is one block of ash and rocks.
type Pattern []string

// Transpose swaps rows and columns.
func (p Pattern) Transpose() Pattern {
	if len(p) == 0 {
		return nil
	}
	out := make(Pattern, len(p[0]))
	for x := range out {
		var b strings.Builder
		for _, row := range p {
			b.WriteByte(row[x])
		}
		out[x] = b.String()
	}
	return out
}

func diff(a, b string) int {
	n := 0
	for i := range len(a) {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// Mirror returns the number of rows above a horizontal line of reflection
// that needs exactly smudges cells fixed to become perfect.
func (p Pattern) Mirror(smudges int) (int, bool) {
	for above := 1; above < len(p); above++ {
		n := 0
		for i := 0; above-1-i >= 0 && above+i < len(p) && n <= smudges; i++ {
			n += diff(p[above-1-i], p[above+i])
		}
		if n == smudges {
			return above, true
		}
	}
	return 0, false
}

// Summary returns columns left of a vertical mirror, or 100 times the rows
// above a horizontal one.
func (p Pattern) Summary(smudges int) (int, bool) {
	if cols, ok := p.Transpose().Mirror(smudges); ok {
		return cols, true
	}
	if rows, ok := p.Mirror(smudges); ok {
		return 100 * rows, true
	}
	return 0, false
}

// Parse reads blank-line separated patterns.
func Parse(input string) ([]Pattern, error) {
	var patterns []Pattern
	for _, block := range parse.Blocks(input) {
		for _, row := range block {
			if len(row) != len(block[0]) || row == "" {
				return nil, parse.Errorf("ragged pattern row %q", row)
			}
			if strings.Trim(row, ".#") != "" {
				return nil, parse.Errorf("unexpected character in %q", row)
			}
		}
		patterns = append(patterns, Pattern(block))
	}
	return patterns, nil
}

func solve(input string, smudges int) (int, error) {
	patterns, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, p := range patterns {
		s, ok := p.Summary(smudges)
		if !ok {
			return 0, parse.Errorf("pattern %d has no line of reflection", i+1)
		}
		total += s
	}
	return total, nil
}

// Part1 summarises the perfect reflections.
func Part1(input string) (int, error) { return solve(input, 0) }

// Part2 summarises the reflections found after fixing one smudge.
func Part2(input string) (int, error) { return solve(input, 1) }

const sampleInput = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#
`
