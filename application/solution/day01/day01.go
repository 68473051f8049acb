// Package day01 solves "Trebuchet?!": calibration values hidden in lines of text.
package day01

import (
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 1.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(1, "Trebuchet?!", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput1, 142),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput2, 281),
	)
}

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at line[i]. Spelled-out digits count only
// when spelled is true. Words may overlap, e.g. "eightwo".
func digitAt(line string, i int, spelled bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

func calibrationValue(line string, spelled bool) (int, error) {
	first, last := -1, -1
	for i := range len(line) {
		if d, ok := digitAt(line, i, spelled); ok {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0, parse.Errorf("no digit in %q", line)
	}
	return first*10 + last, nil
}

func sum(input string, spelled bool) (int, error) {
	total := 0
	for _, line := range parse.Lines(input) {
		v, err := calibrationValue(line, spelled)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// Part1 sums the calibration values made of the first and last numeric digit.
func Part1(input string) (int, error) {
	return sum(input, false)
}

// Part2 also accepts digits spelled out as words.
func Part2(input string) (int, error) {
	return sum(input, true)
}

const sampleInput1 = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const sampleInput2 = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`
