// Package puzzle provides the domain types shared by every daily solution.
package puzzle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Day is an Advent calendar day.
type Day int

// ParseDay parses "5", "05" or "day5".
func ParseDay(s string) (Day, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "day")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	d := Day(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDay, n)
	}
	return d, nil
}

// Valid reports whether the day is on the calendar.
func (d Day) Valid() bool { return d >= 1 && d <= 25 }

// String returns the day as "day05".
func (d Day) String() string { return fmt.Sprintf("day%02d", int(d)) }

// Part is one of the two halves of a puzzle.
type Part int

// Part values.
const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order.
func Parts() []Part { return []Part{PartOne, PartTwo} }

// ParsePart parses "1" or "2".
func ParsePart(s string) (Part, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPart, s)
	}
	p := Part(n)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPart, n)
	}
	return p, nil
}

// Valid reports whether the part is 1 or 2.
func (p Part) Valid() bool { return p == PartOne || p == PartTwo }

// String returns the part as "part1".
func (p Part) String() string { return fmt.Sprintf("part%d", int(p)) }

// Key identifies one part of one day.
type Key struct {
	Day  Day
	Part Part
}

// String returns "day05/part2".
func (k Key) String() string { return k.Day.String() + "/" + k.Part.String() }

// Solver computes the answer for one part from the raw puzzle input.
type Solver func(input string) (int, error)

// Sample is a published example input with its expected answer.
type Sample struct {
	part  Part
	name  string
	input string
	want  int
}

// NewSample creates a Sample.
func NewSample(part Part, name, input string, want int) Sample {
	return Sample{part: part, name: name, input: input, want: want}
}

// Part returns the part the sample checks.
func (s Sample) Part() Part { return s.part }

// Name returns a short label for the sample.
func (s Sample) Name() string { return s.name }

// Input returns the example input.
func (s Sample) Input() string { return s.input }

// Want returns the published answer.
func (s Sample) Want() int { return s.want }

// Puzzle is a registered day with its solvers and samples.
type Puzzle struct {
	day     Day
	title   string
	solvers map[Part]Solver
	samples []Sample
}

// New creates a Puzzle. A nil solver leaves that part unimplemented.
func New(day Day, title string, part1, part2 Solver, samples ...Sample) Puzzle {
	solvers := make(map[Part]Solver, 2)
	if part1 != nil {
		solvers[PartOne] = part1
	}
	if part2 != nil {
		solvers[PartTwo] = part2
	}
	s := make([]Sample, len(samples))
	copy(s, samples)
	return Puzzle{day: day, title: title, solvers: solvers, samples: s}
}

// Day returns the calendar day.
func (p Puzzle) Day() Day { return p.day }

// Title returns the puzzle title.
func (p Puzzle) Title() string { return p.title }

// Solver returns the solver for a part.
func (p Puzzle) Solver(part Part) (Solver, error) {
	if !part.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPart, int(part))
	}
	s, ok := p.solvers[part]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartNotImplemented, Key{Day: p.day, Part: part})
	}
	return s, nil
}

// Implemented returns the parts that have a solver, in order.
func (p Puzzle) Implemented() []Part {
	parts := make([]Part, 0, 2)
	for _, part := range Parts() {
		if _, ok := p.solvers[part]; ok {
			parts = append(parts, part)
		}
	}
	return parts
}

// Samples returns all samples.
func (p Puzzle) Samples() []Sample {
	s := make([]Sample, len(p.samples))
	copy(s, p.samples)
	return s
}

// SamplesFor returns the samples that check the given part.
func (p Puzzle) SamplesFor(part Part) []Sample {
	var s []Sample
	for _, sample := range p.samples {
		if sample.part == part {
			s = append(s, sample)
		}
	}
	return s
}

// Answer is the result of solving one part.
type Answer struct {
	key            Key
	value          int
	elapsed        time.Duration
	samplesChecked int
}

// NewAnswer creates an Answer.
func NewAnswer(key Key, value int, elapsed time.Duration, samplesChecked int) Answer {
	return Answer{key: key, value: value, elapsed: elapsed, samplesChecked: samplesChecked}
}

// Key returns the day and part.
func (a Answer) Key() Key { return a.key }

// Day returns the calendar day.
func (a Answer) Day() Day { return a.key.Day }

// Part returns the part.
func (a Answer) Part() Part { return a.key.Part }

// Value returns the computed answer.
func (a Answer) Value() int { return a.value }

// Elapsed returns how long the solver ran on the real input.
func (a Answer) Elapsed() time.Duration { return a.elapsed }

// SamplesChecked returns how many samples passed before the real run.
func (a Answer) SamplesChecked() int { return a.samplesChecked }
