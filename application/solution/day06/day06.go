// Package day06 solves "Wait For It".
package day06

import (
	"math"
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
	"github.com/helixml/aoc2023/internal/xmath"
)

// Puzzle returns the registered puzzle for day 6.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(6, "Wait For It", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 288),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 71503),
	)
}

// Race is one boat race: its duration and the record distance.
type Race struct {
	Time, Record int
}

// distance returns how far the boat travels when the button is held for hold ms.
func (r Race) distance(hold int) int { return hold * (r.Time - hold) }

// Ways counts the hold times that beat the record.
//
// The winning holds are the integers strictly between the roots of
// hold*(Time-hold) = Record. The float roots are only a starting point and
// are nudged to the exact integer bounds.
func (r Race) Ways() int {
	disc := float64(r.Time*r.Time - 4*r.Record)
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	lo := int(math.Floor((float64(r.Time) - sq) / 2))
	hi := int(math.Ceil((float64(r.Time) + sq) / 2))
	lo = max(lo, 0)
	hi = min(hi, r.Time)
	for lo <= hi && r.distance(lo) <= r.Record {
		lo++
	}
	for hi >= lo && r.distance(hi) <= r.Record {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func parseLines(input string) (string, string, error) {
	lines := parse.Lines(input)
	if len(lines) != 2 {
		return "", "", parse.Errorf("want Time and Distance lines, got %d lines", len(lines))
	}
	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return "", "", parse.Errorf("missing Time header in %q", lines[0])
	}
	dists, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return "", "", parse.Errorf("missing Distance header in %q", lines[1])
	}
	return times, dists, nil
}

// Parse reads the races column by column.
func Parse(input string) ([]Race, error) {
	timeText, distText, err := parseLines(input)
	if err != nil {
		return nil, err
	}
	times, err := parse.Ints(timeText)
	if err != nil {
		return nil, err
	}
	dists, err := parse.Ints(distText)
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, parse.Errorf("%d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: dists[i]}
	}
	return races, nil
}

// ParseKerned reads each line as a single number, ignoring the spaces.
func ParseKerned(input string) (Race, error) {
	timeText, distText, err := parseLines(input)
	if err != nil {
		return Race{}, err
	}
	t, err := parse.Int(strings.Join(strings.Fields(timeText), ""))
	if err != nil {
		return Race{}, err
	}
	d, err := parse.Int(strings.Join(strings.Fields(distText), ""))
	if err != nil {
		return Race{}, err
	}
	return Race{Time: t, Record: d}, nil
}

// Part1 multiplies the number of ways to win each race.
func Part1(input string) (int, error) {
	races, err := Parse(input)
	if err != nil {
		return 0, err
	}
	ways := make([]int, len(races))
	for i, r := range races {
		ways[i] = r.Ways()
	}
	return xmath.Product(ways), nil
}

// Part2 counts the ways to win the single kerned race.
func Part2(input string) (int, error) {
	r, err := ParseKerned(input)
	if err != nil {
		return 0, err
	}
	return r.Ways(), nil
}

const sampleInput = `Time:      7  15   30
Distance:  9  40  200
`
