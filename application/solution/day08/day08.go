// Package day08 solves "Haunted Wasteland".
package day08

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
	"github.com/helixml/aoc2023/internal/xmath"
)

// ErrUnreachable is returned when the walk can never finish.
var ErrUnreachable = errors.New("goal is unreachable")

// ErrMultipleGoalsInCycle is returned when a walker's cycle passes more than
// one goal state, which the encounter solver does not handle.
var ErrMultipleGoalsInCycle = errors.New("walker cycle visits more than one goal")

// Puzzle returns the registered puzzle for day 8.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(8, "Haunted Wasteland", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "direct", sampleInput1, 2),
		puzzle.NewSample(puzzle.PartOne, "repeat", sampleInput2, 6),
		puzzle.NewSample(puzzle.PartTwo, "ghosts", sampleInput3, 6),
		puzzle.NewSample(puzzle.PartTwo, "offset ghosts", sampleInput4, 8),
	)
}

// Map is the instruction list and the node network.
type Map struct {
	// Turns holds 0 for left and 1 for right.
	Turns []int
	Nodes map[string][2]string
}

// Next returns the node reached from node at the given step number.
func (m Map) Next(node string, step int) string {
	return m.Nodes[node][m.Turns[step%len(m.Turns)]]
}

// Parse reads the instructions line, a blank line, then "AAA = (BBB, CCC)" lines.
func Parse(input string) (Map, error) {
	lines := parse.Lines(input)
	if len(lines) < 3 || lines[1] != "" {
		return Map{}, parse.Errorf("want instructions, a blank line and nodes")
	}
	m := Map{Nodes: make(map[string][2]string, len(lines)-2)}
	for _, r := range lines[0] {
		switch r {
		case 'L':
			m.Turns = append(m.Turns, 0)
		case 'R':
			m.Turns = append(m.Turns, 1)
		default:
			return Map{}, parse.Errorf("unknown instruction %q", r)
		}
	}
	for _, line := range lines[2:] {
		name, children, err := parse.Cut(line, " = ")
		if err != nil {
			return Map{}, err
		}
		inner, ok := strings.CutPrefix(children, "(")
		if ok {
			inner, ok = strings.CutSuffix(inner, ")")
		}
		if !ok {
			return Map{}, parse.Errorf("children must be parenthesised: %q", children)
		}
		left, right, err := parse.Cut(inner, ", ")
		if err != nil {
			return Map{}, err
		}
		m.Nodes[strings.TrimSpace(name)] = [2]string{strings.TrimSpace(left), strings.TrimSpace(right)}
	}
	for name, children := range m.Nodes {
		for _, c := range children {
			if _, ok := m.Nodes[c]; !ok {
				return Map{}, parse.Errorf("node %s points at unknown node %s", name, c)
			}
		}
	}
	return m, nil
}

// Part1 counts the steps from AAA to ZZZ.
func Part1(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if _, ok := m.Nodes["AAA"]; !ok {
		return 0, parse.Errorf("no AAA node")
	}
	limit := len(m.Nodes) * len(m.Turns)
	node := "AAA"
	for step := 0; ; step++ {
		if node == "ZZZ" {
			return step, nil
		}
		if step > limit {
			return 0, fmt.Errorf("%w: ZZZ from AAA", ErrUnreachable)
		}
		node = m.Next(node, step)
	}
}

// Encounter describes a walker that sits on a goal at First and every Period
// steps afterwards.
type Encounter struct {
	First  int
	Period int
}

type state struct {
	node string
	turn int
}

type walker struct {
	node      string
	firstSeen map[state]int
	encounter *Encounter
}

// observe records a goal visit and detects the walker's cycle once a goal
// state repeats.
func (w *walker) observe(s state, step int) error {
	first, seen := w.firstSeen[s]
	if !seen {
		w.firstSeen[s] = step
		return nil
	}
	inCycle := 0
	for _, f := range w.firstSeen {
		if f >= first {
			inCycle++
		}
	}
	if inCycle > 1 {
		return fmt.Errorf("%w: from %s", ErrMultipleGoalsInCycle, s.node)
	}
	w.encounter = &Encounter{First: first, Period: step - first}
	return nil
}

func isStart(node string) bool { return strings.HasSuffix(node, "A") }

func isGoal(node string) bool { return strings.HasSuffix(node, "Z") }

// Part2 walks every node ending in A at once and counts the steps until all
// of them stand on nodes ending in Z.
func Part2(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var walkers []*walker
	for name := range m.Nodes {
		if isStart(name) {
			walkers = append(walkers, &walker{node: name, firstSeen: make(map[state]int)})
		}
	}
	if len(walkers) == 0 {
		return 0, parse.Errorf("no start nodes")
	}
	slices.SortFunc(walkers, func(a, b *walker) int { return strings.Compare(a.node, b.node) })

	limit := 2*len(m.Nodes)*len(m.Turns) + 1
	for step := 0; ; step++ {
		if allAt(walkers, isGoal) {
			return step, nil
		}
		if encounters, ok := cycled(walkers); ok {
			return FirstCommonEncounter(encounters, step)
		}
		if step > limit {
			return 0, fmt.Errorf("%w: a walker never returns to a goal", ErrUnreachable)
		}
		for _, w := range walkers {
			w.node = m.Next(w.node, step)
			if w.encounter == nil && isGoal(w.node) {
				if err := w.observe(state{node: w.node, turn: (step + 1) % len(m.Turns)}, step+1); err != nil {
					return 0, err
				}
			}
		}
	}
}

func allAt(walkers []*walker, goal func(string) bool) bool {
	for _, w := range walkers {
		if !goal(w.node) {
			return false
		}
	}
	return true
}

func cycled(walkers []*walker) ([]Encounter, bool) {
	out := make([]Encounter, 0, len(walkers))
	for _, w := range walkers {
		if w.encounter == nil {
			return nil, false
		}
		out = append(out, *w.encounter)
	}
	return out, true
}

// FirstCommonEncounter returns the smallest step, no earlier than from or
// any walker's first encounter, at which every walker is on its goal.
func FirstCommonEncounter(encounters []Encounter, from int) (int, error) {
	if len(encounters) == 0 {
		return 0, fmt.Errorf("%w: no walkers", ErrUnreachable)
	}
	x, step := encounters[0].First, encounters[0].Period
	for _, e := range encounters {
		if e.Period <= 0 {
			return 0, fmt.Errorf("%w: non-positive period %d", ErrUnreachable, e.Period)
		}
		from = max(from, e.First)
	}
	for _, e := range encounters[1:] {
		found := false
		for range e.Period {
			if mod(x-e.First, e.Period) == 0 {
				found = true
				break
			}
			x += step
		}
		if !found {
			return 0, fmt.Errorf("%w: periods %d and %d never align", ErrUnreachable, step, e.Period)
		}
		step = xmath.LCM(step, e.Period)
	}
	return from + mod(x-from, step), nil
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

const sampleInput1 = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`

const sampleInput2 = `LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
`

const sampleInput3 = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`

const sampleInput4 = `LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22M, 22M)
22M = (22N, 22N)
22N = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
`
