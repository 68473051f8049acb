// Package day02 solves "Cube Conundrum".
package day02

import (
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 2.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(2, "Cube Conundrum", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 8),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 2286),
	)
}

// Subset is one handful of cubes revealed from the bag.
type Subset struct {
	Red, Green, Blue int
}

// Power multiplies the three counts.
func (s Subset) Power() int { return s.Red * s.Green * s.Blue }

// Game is one line of the record.
type Game struct {
	ID      int
	Subsets []Subset
}

// Minimum returns the fewest cubes of each colour that make the game possible.
func (g Game) Minimum() Subset {
	var m Subset
	for _, s := range g.Subsets {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

// PossibleWith reports whether every subset fits within the bag.
func (g Game) PossibleWith(bag Subset) bool {
	for _, s := range g.Subsets {
		if s.Red > bag.Red || s.Green > bag.Green || s.Blue > bag.Blue {
			return false
		}
	}
	return true
}

func parseSubset(s string) (Subset, error) {
	var sub Subset
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return Subset{}, parse.Errorf("bad cube count %q", part)
		}
		n, err := parse.Int(fields[0])
		if err != nil {
			return Subset{}, err
		}
		switch fields[1] {
		case "red":
			sub.Red = n
		case "green":
			sub.Green = n
		case "blue":
			sub.Blue = n
		default:
			return Subset{}, parse.Errorf("unknown colour %q", fields[1])
		}
	}
	return sub, nil
}

// Parse reads one game per line.
func Parse(input string) ([]Game, error) {
	var games []Game
	for _, line := range parse.Lines(input) {
		header, rest, err := parse.Cut(line, ":")
		if err != nil {
			return nil, err
		}
		idText, ok := strings.CutPrefix(header, "Game ")
		if !ok {
			return nil, parse.Errorf("bad game header %q", header)
		}
		id, err := parse.Int(idText)
		if err != nil {
			return nil, err
		}
		game := Game{ID: id}
		for _, s := range strings.Split(rest, ";") {
			sub, err := parseSubset(s)
			if err != nil {
				return nil, err
			}
			game.Subsets = append(game.Subsets, sub)
		}
		games = append(games, game)
	}
	return games, nil
}

// Part1 sums the ids of games possible with 12 red, 13 green and 14 blue cubes.
func Part1(input string) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	bag := Subset{Red: 12, Green: 13, Blue: 14}
	total := 0
	for _, g := range games {
		if g.PossibleWith(bag) {
			total += g.ID
		}
	}
	return total, nil
}

// Part2 sums the power of each game's minimum set.
func Part2(input string) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range games {
		total += g.Minimum().Power()
	}
	return total, nil
}

const sampleInput = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`
