// Package day03 solves "Gear Ratios".
package day03

import (
	"github.com/helixml/aoc2023/domain/grid"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 3.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(3, "Gear Ratios", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 4361),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 467835),
	)
}

// Number is a run of digits on the schematic.
type Number struct {
	Value  int
	At     grid.Point
	Length int
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }

// numbers returns every digit run in row-major order.
func numbers(lines []string) []Number {
	var out []Number
	for y, line := range lines {
		for x := 0; x < len(line); {
			if !isDigit(line[x]) {
				x++
				continue
			}
			start, v := x, 0
			for x < len(line) && isDigit(line[x]) {
				v = v*10 + int(line[x]-'0')
				x++
			}
			out = append(out, Number{Value: v, At: grid.Pt(start, y), Length: x - start})
		}
	}
	return out
}

// neighbours returns the positions around n that match keep.
func neighbours(lines []string, n Number, keep func(byte) bool) []grid.Point {
	var pts []grid.Point
	for y := n.At.Y - 1; y <= n.At.Y+1; y++ {
		if y < 0 || y >= len(lines) {
			continue
		}
		line := lines[y]
		for x := max(0, n.At.X-1); x <= n.At.X+n.Length && x < len(line); x++ {
			if keep(line[x]) {
				pts = append(pts, grid.Pt(x, y))
			}
		}
	}
	return pts
}

// Part1 sums every number adjacent to a symbol, diagonals included.
func Part1(input string) (int, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return 0, parse.Errorf("empty schematic")
	}
	total := 0
	for _, n := range numbers(lines) {
		if len(neighbours(lines, n, isSymbol)) > 0 {
			total += n.Value
		}
	}
	return total, nil
}

// Part2 sums the gear ratios of every '*' adjacent to exactly two numbers.
func Part2(input string) (int, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return 0, parse.Errorf("empty schematic")
	}
	gears := make(map[grid.Point][]int)
	for _, n := range numbers(lines) {
		for _, p := range neighbours(lines, n, func(b byte) bool { return b == '*' }) {
			gears[p] = append(gears[p], n.Value)
		}
	}
	total := 0
	for _, vals := range gears {
		if len(vals) == 2 {
			total += vals[0] * vals[1]
		}
	}
	return total, nil
}

const sampleInput = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`
