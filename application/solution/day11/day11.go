// Package day11 solves "Cosmic Expansion".
package day11

import (
	"strings"

	"github.com/helixml/aoc2023/domain/grid"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 11. The published example
// has no answer for the million-fold expansion, so only part 1 carries a
// sample.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(11, "Cosmic Expansion", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 374),
	)
}

// Galaxies returns the position of every '#' in row-major order.
func Galaxies(g grid.Grid) []grid.Point {
	return g.FindAll('#')
}

// Expand returns the galaxy positions after every empty row and column has
// been replaced by factor copies of itself.
func Expand(g grid.Grid, factor int) []grid.Point {
	galaxies := Galaxies(g)
	usedRows := make([]bool, g.Height())
	usedCols := make([]bool, g.Width())
	for _, p := range galaxies {
		usedRows[p.Y] = true
		usedCols[p.X] = true
	}
	rowShift := shifts(usedRows, factor)
	colShift := shifts(usedCols, factor)

	out := make([]grid.Point, len(galaxies))
	for i, p := range galaxies {
		out[i] = grid.Pt(p.X+colShift[p.X], p.Y+rowShift[p.Y])
	}
	return out
}

// shifts returns, per index, how far it moves once each earlier unused
// index has grown to factor entries.
func shifts(used []bool, factor int) []int {
	out := make([]int, len(used))
	shift := 0
	for i, u := range used {
		out[i] = shift
		if !u {
			shift += factor - 1
		}
	}
	return out
}

// Pairs calls fn for every unordered pair of items.
func Pairs[T any](items []T, fn func(a, b T)) {
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			fn(items[i], items[j])
		}
	}
}

// SumDistances expands the image by factor and sums the Manhattan distance
// between every pair of galaxies.
func SumDistances(input string, factor int) (int, error) {
	lines := parse.Lines(input)
	for _, line := range lines {
		if strings.Trim(line, ".#") != "" {
			return 0, parse.Errorf("unexpected character in %q", line)
		}
	}
	g, err := grid.New(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	Pairs(Expand(g, factor), func(a, b grid.Point) {
		total += a.Manhattan(b)
	})
	return total, nil
}

// Part1 doubles every empty row and column.
func Part1(input string) (int, error) { return SumDistances(input, 2) }

// Part2 grows every empty row and column a million-fold.
func Part2(input string) (int, error) { return SumDistances(input, 1_000_000) }

const sampleInput = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`
