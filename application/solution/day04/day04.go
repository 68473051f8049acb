// Package day04 solves "Scratchcards".
package day04

import (
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 4.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(4, "Scratchcards", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 13),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 30),
	)
}

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the numbers we have that are also winning numbers.
func (c Card) Matches() int {
	win := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = struct{}{}
	}
	count := 0
	for _, n := range c.Have {
		if _, ok := win[n]; ok {
			count++
		}
	}
	return count
}

// Parse reads "Card N: winning | have" lines.
func Parse(input string) ([]Card, error) {
	var cards []Card
	for _, line := range parse.Lines(input) {
		header, rest, err := parse.Cut(line, ":")
		if err != nil {
			return nil, err
		}
		idText, ok := strings.CutPrefix(header, "Card")
		if !ok {
			return nil, parse.Errorf("bad card header %q", header)
		}
		id, err := parse.Int(idText)
		if err != nil {
			return nil, err
		}
		left, right, err := parse.Cut(rest, "|")
		if err != nil {
			return nil, err
		}
		winning, err := parse.Ints(left)
		if err != nil {
			return nil, err
		}
		have, err := parse.Ints(right)
		if err != nil {
			return nil, err
		}
		cards = append(cards, Card{ID: id, Winning: winning, Have: have})
	}
	return cards, nil
}

// Part1 scores each card as 2^(matches-1) and sums the scores.
func Part1(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range cards {
		if m := c.Matches(); m > 0 {
			total += 1 << (m - 1)
		}
	}
	return total, nil
}

// Part2 counts the cards held once every win has copied the following cards.
func Part2(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		total += copies[i]
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}

const sampleInput = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`
