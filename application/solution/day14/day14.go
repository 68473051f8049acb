// Package day14 solves "Parabolic Reflector Dish".
package day14

import (
	"strings"

	"github.com/helixml/aoc2023/domain/grid"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 14.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(14, "Parabolic Reflector Dish", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 136),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 64),
	)
}

const (
	round = 'O'
	cube  = '#'
	empty = '.'
)

// SpinCycles is how many times part 2 spins the platform.
const SpinCycles = 1_000_000_000

// Tilt rolls every round rock as far as it goes in dir. g is modified in place.
func Tilt(g grid.Grid, dir grid.Direction) {
	back := dir.Opposite()
	for _, start := range edge(g, dir) {
		// rest is where the next rock moving in dir will stop.
		rest := start
		for p := start; g.In(p); p = p.Step(back) {
			switch c, _ := g.At(p); c {
			case cube:
				rest = p.Step(back)
			case round:
				g.Set(p, empty)
				g.Set(rest, round)
				rest = rest.Step(back)
			}
		}
	}
}

// edge returns the cells on the side of the grid that rocks roll towards.
func edge(g grid.Grid, dir grid.Direction) []grid.Point {
	var pts []grid.Point
	switch dir {
	case grid.North, grid.South:
		y := 0
		if dir == grid.South {
			y = g.Height() - 1
		}
		for x := range g.Width() {
			pts = append(pts, grid.Pt(x, y))
		}
	default:
		x := 0
		if dir == grid.East {
			x = g.Width() - 1
		}
		for y := range g.Height() {
			pts = append(pts, grid.Pt(x, y))
		}
	}
	return pts
}

// Spin tilts north, west, south then east.
func Spin(g grid.Grid) {
	for _, d := range []grid.Direction{grid.North, grid.West, grid.South, grid.East} {
		Tilt(g, d)
	}
}

// Load sums, for each round rock, its distance from the south edge.
func Load(g grid.Grid) int {
	total := 0
	for _, p := range g.FindAll(round) {
		total += g.Height() - p.Y
	}
	return total
}

func parsePlatform(input string) (grid.Grid, error) {
	lines := parse.Lines(input)
	for _, line := range lines {
		if strings.Trim(line, "O#.") != "" {
			return grid.Grid{}, parse.Errorf("unexpected character in %q", line)
		}
	}
	if len(lines) == 0 {
		return grid.Grid{}, parse.Errorf("empty platform")
	}
	return grid.New(lines)
}

// Part1 returns the north load after one tilt north.
func Part1(input string) (int, error) {
	g, err := parsePlatform(input)
	if err != nil {
		return 0, err
	}
	Tilt(g, grid.North)
	return Load(g), nil
}

// Part2 returns the north load after SpinCycles spins. The platform settles
// into a loop quickly, so the loop is detected and skipped.
func Part2(input string) (int, error) {
	g, err := parsePlatform(input)
	if err != nil {
		return 0, err
	}
	seen := map[string]int{g.String(): 0}
	loads := []int{Load(g)}
	for i := 1; i <= SpinCycles; i++ {
		Spin(g)
		key := g.String()
		if first, ok := seen[key]; ok {
			period := i - first
			return loads[first+(SpinCycles-first)%period], nil
		}
		seen[key] = i
		loads = append(loads, Load(g))
	}
	return Load(g), nil
}

const sampleInput = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`
