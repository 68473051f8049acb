// Package day16 solves "The Floor Will Be Lava".
package day16

import (
	"strings"

	"github.com/helixml/aoc2023/domain/grid"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 16.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(16, "The Floor Will Be Lava", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 46),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 51),
	)
}

// Beam is a light beam entering a tile while travelling in Dir.
type Beam struct {
	At  grid.Point
	Dir grid.Direction
}

// deflect returns the directions a beam leaves a tile in.
func deflect(tile byte, d grid.Direction) []grid.Direction {
	switch tile {
	case '/':
		// North <-> East, South <-> West.
		return []grid.Direction{[...]grid.Direction{grid.East, grid.North, grid.West, grid.South}[d]}
	case '\\':
		// North <-> West, South <-> East.
		return []grid.Direction{[...]grid.Direction{grid.West, grid.South, grid.East, grid.North}[d]}
	case '|':
		if d == grid.East || d == grid.West {
			return []grid.Direction{grid.North, grid.South}
		}
	case '-':
		if d == grid.North || d == grid.South {
			return []grid.Direction{grid.East, grid.West}
		}
	}
	return []grid.Direction{d}
}

// Energized counts the tiles a beam entering at start passes through.
func Energized(g grid.Grid, start Beam) int {
	seen := make(map[Beam]struct{})
	tiles := make(map[grid.Point]struct{})
	queue := []Beam{start}
	for len(queue) > 0 {
		b := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		tile, ok := g.At(b.At)
		if !ok {
			continue
		}
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		tiles[b.At] = struct{}{}
		for _, d := range deflect(tile, b.Dir) {
			queue = append(queue, Beam{At: b.At.Step(d), Dir: d})
		}
	}
	return len(tiles)
}

// Entries returns every beam that can enter the grid from its edge.
func Entries(g grid.Grid) []Beam {
	var out []Beam
	for x := range g.Width() {
		out = append(out,
			Beam{At: grid.Pt(x, 0), Dir: grid.South},
			Beam{At: grid.Pt(x, g.Height()-1), Dir: grid.North},
		)
	}
	for y := range g.Height() {
		out = append(out,
			Beam{At: grid.Pt(0, y), Dir: grid.East},
			Beam{At: grid.Pt(g.Width()-1, y), Dir: grid.West},
		)
	}
	return out
}

func parseContraption(input string) (grid.Grid, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return grid.Grid{}, parse.Errorf("empty contraption")
	}
	for _, line := range lines {
		if strings.Trim(line, `./\|-`) != "" {
			return grid.Grid{}, parse.Errorf("unexpected character in %q", line)
		}
	}
	return grid.New(lines)
}

// Part1 counts the energized tiles for a beam entering the top-left corner
// heading east.
func Part1(input string) (int, error) {
	g, err := parseContraption(input)
	if err != nil {
		return 0, err
	}
	return Energized(g, Beam{At: grid.Pt(0, 0), Dir: grid.East}), nil
}

// Part2 returns the most tiles any edge entry energizes.
func Part2(input string) (int, error) {
	g, err := parseContraption(input)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, b := range Entries(g) {
		best = max(best, Energized(g, b))
	}
	return best, nil
}

const sampleInput = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`
