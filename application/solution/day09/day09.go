// Package day09 solves "Mirage Maintenance".
package day09

import (
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 9.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(9, "Mirage Maintenance", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 114),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 2),
	)
}

func allZero(values []int) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

func differences(values []int) []int {
	out := make([]int, len(values)-1)
	for i := range out {
		out[i] = values[i+1] - values[i]
	}
	return out
}

// Next extrapolates the value after the sequence.
func Next(values []int) int {
	if len(values) == 0 || allZero(values) {
		return 0
	}
	return values[len(values)-1] + Next(differences(values))
}

// Previous extrapolates the value before the sequence.
func Previous(values []int) int {
	if len(values) == 0 || allZero(values) {
		return 0
	}
	return values[0] - Previous(differences(values))
}

// Parse reads one history per line.
func Parse(input string) ([][]int, error) {
	var histories [][]int
	for _, line := range parse.Lines(input) {
		values, err := parse.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			return nil, parse.Errorf("empty history")
		}
		histories = append(histories, values)
	}
	return histories, nil
}

func solve(input string, extrapolate func([]int) int) (int, error) {
	histories, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, h := range histories {
		total += extrapolate(h)
	}
	return total, nil
}

// Part1 sums the next value of every history.
func Part1(input string) (int, error) { return solve(input, Next) }

// Part2 sums the previous value of every history.
func Part2(input string) (int, error) { return solve(input, Previous) }

const sampleInput = `0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
`
