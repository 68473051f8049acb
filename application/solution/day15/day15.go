// Package day15 solves "Lens Library".
package day15

import (
	"slices"
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 15.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(15, "Lens Library", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 1320),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 145),
	)
}

// Hash runs the HASH algorithm over s.
func Hash(s string) int {
	h := 0
	for i := range len(s) {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

// Steps splits the initialization sequence on commas, ignoring newlines.
func Steps(input string) ([]string, error) {
	s := strings.ReplaceAll(parse.Normalize(input), "\n", "")
	if s == "" {
		return nil, parse.Errorf("empty initialization sequence")
	}
	steps := strings.Split(s, ",")
	for _, step := range steps {
		if step == "" {
			return nil, parse.Errorf("empty step")
		}
	}
	return steps, nil
}

// Lens is a labelled lens in a box.
type Lens struct {
	Label string
	Focal int
}

// Boxes is the HASHMAP: 256 boxes of ordered lenses.
type Boxes [256][]Lens

// Apply runs one "label=N" or "label-" step.
func (b *Boxes) Apply(step string) error {
	if label, ok := strings.CutSuffix(step, "-"); ok {
		box := &b[Hash(label)]
		*box = slices.DeleteFunc(*box, func(l Lens) bool { return l.Label == label })
		return nil
	}
	label, focalText, err := parse.Cut(step, "=")
	if err != nil {
		return err
	}
	focal, err := parse.Int(focalText)
	if err != nil {
		return err
	}
	if focal < 1 || focal > 9 {
		return parse.Errorf("focal length %d out of range in %q", focal, step)
	}
	box := &b[Hash(label)]
	if i := slices.IndexFunc(*box, func(l Lens) bool { return l.Label == label }); i >= 0 {
		(*box)[i].Focal = focal
		return nil
	}
	*box = append(*box, Lens{Label: label, Focal: focal})
	return nil
}

// FocusingPower sums (box+1) * (slot+1) * focal length over every lens.
func (b *Boxes) FocusingPower() int {
	total := 0
	for i, box := range b {
		for j, l := range box {
			total += (i + 1) * (j + 1) * l.Focal
		}
	}
	return total
}

// Part1 sums the HASH of every step.
func Part1(input string) (int, error) {
	steps, err := Steps(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range steps {
		total += Hash(s)
	}
	return total, nil
}

// Part2 runs the HASHMAP procedure and returns the focusing power.
func Part2(input string) (int, error) {
	steps, err := Steps(input)
	if err != nil {
		return 0, err
	}
	var boxes Boxes
	for _, s := range steps {
		if err := boxes.Apply(s); err != nil {
			return 0, err
		}
	}
	return boxes.FocusingPower(), nil
}

const sampleInput = `rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7
`
