// Package day10 solves "Pipe Maze".
package day10

import (
	"errors"
	"fmt"

	"github.com/helixml/aoc2023/domain/grid"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
	"github.com/helixml/aoc2023/internal/xmath"
)

// ErrNoLoop is returned when no pipe loop passes through the start tile.
var ErrNoLoop = errors.New("no loop through start")

// Puzzle returns the registered puzzle for day 10.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(10, "Pipe Maze", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "complex loop", sampleComplex, 8),
		puzzle.NewSample(puzzle.PartOne, "square", sampleSquare, 4),
		puzzle.NewSample(puzzle.PartTwo, "complex loop", sampleComplex, 1),
		puzzle.NewSample(puzzle.PartTwo, "open channel", sampleChannel, 4),
		puzzle.NewSample(puzzle.PartTwo, "squeezed channel", sampleSqueezed, 4),
		puzzle.NewSample(puzzle.PartTwo, "scattered", sampleScattered, 8),
	)
}

var pipes = map[byte][2]grid.Direction{
	'|': {grid.North, grid.South},
	'-': {grid.East, grid.West},
	'L': {grid.North, grid.East},
	'J': {grid.North, grid.West},
	'7': {grid.South, grid.West},
	'F': {grid.South, grid.East},
}

// exit returns the direction leaving a pipe entered while travelling in dir.
func exit(tile byte, dir grid.Direction) (grid.Direction, bool) {
	ends, ok := pipes[tile]
	if !ok {
		return 0, false
	}
	from := dir.Opposite()
	switch from {
	case ends[0]:
		return ends[1], true
	case ends[1]:
		return ends[0], true
	}
	return 0, false
}

// Loop returns the tiles of the loop through S in walk order, starting at S.
func Loop(g grid.Grid) ([]grid.Point, error) {
	start, ok := g.Find('S')
	if !ok {
		return nil, parse.Errorf("no start tile")
	}
	for _, d := range grid.Directions() {
		if path, ok := walk(g, start, d); ok {
			return path, nil
		}
	}
	return nil, fmt.Errorf("%w at %s", ErrNoLoop, start)
}

func walk(g grid.Grid, start grid.Point, dir grid.Direction) ([]grid.Point, bool) {
	path := []grid.Point{start}
	limit := g.Width() * g.Height()
	for pos := start.Step(dir); pos != start; pos = pos.Step(dir) {
		tile, ok := g.At(pos)
		if !ok || len(path) > limit {
			return nil, false
		}
		next, ok := exit(tile, dir)
		if !ok {
			return nil, false
		}
		path = append(path, pos)
		dir = next
	}
	return path, true
}

func parseLoop(input string) ([]grid.Point, error) {
	g, err := grid.New(parse.Lines(input))
	if err != nil {
		return nil, err
	}
	return Loop(g)
}

// Part1 returns the distance to the farthest tile of the loop.
func Part1(input string) (int, error) {
	loop, err := parseLoop(input)
	if err != nil {
		return 0, err
	}
	return len(loop) / 2, nil
}

// Enclosed counts the lattice points strictly inside the loop using the
// shoelace area and Pick's theorem.
func Enclosed(loop []grid.Point) int {
	twiceArea := 0
	for i, p := range loop {
		q := loop[(i+1)%len(loop)]
		twiceArea += p.X*q.Y - q.X*p.Y
	}
	area := xmath.Abs(twiceArea) / 2
	return area - len(loop)/2 + 1
}

// Part2 counts the tiles enclosed by the loop.
func Part2(input string) (int, error) {
	loop, err := parseLoop(input)
	if err != nil {
		return 0, err
	}
	return Enclosed(loop), nil
}

const sampleComplex = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`

const sampleSquare = `.....
.S-7.
.|.|.
.L-J.
.....
`

const sampleChannel = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

const sampleSqueezed = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

const sampleScattered = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`
