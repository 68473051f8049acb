// Package day12 solves "Hot Springs".
package day12

import (
	"slices"
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/parse"
)

// Puzzle returns the registered puzzle for day 12.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(12, "Hot Springs", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 21),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 525152),
	)
}

// Record is one row of the condition report. Springs holds '.' for
// operational, '#' for damaged and '?' for unknown.
type Record struct {
	Springs string
	Groups  []int
}

// Unfold repeats the record n times, joining the springs with '?'.
func (r Record) Unfold(n int) Record {
	springs := make([]string, n)
	groups := make([]int, 0, n*len(r.Groups))
	for i := range n {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Record{Springs: strings.Join(springs, "?"), Groups: groups}
}

// Arrangements counts the ways to resolve every '?' so that the damaged runs
// match Groups exactly.
func (r Record) Arrangements() int {
	s, groups := r.Springs, r.Groups
	memo := make([][]int, len(s)+1)
	for i := range memo {
		memo[i] = slices.Repeat([]int{-1}, len(groups)+1)
	}

	var count func(i, j int) int
	count = func(i, j int) int {
		if i > len(s) {
			i = len(s)
		}
		if memo[i][j] >= 0 {
			return memo[i][j]
		}
		n := 0
		switch {
		case j == len(groups):
			if !strings.Contains(s[i:], "#") {
				n = 1
			}
		case i == len(s):
		default:
			if s[i] != '#' {
				n += count(i+1, j)
			}
			if s[i] != '.' && fits(s, i, groups[j]) {
				n += count(i+groups[j]+1, j+1)
			}
		}
		memo[i][j] = n
		return n
	}
	return count(0, 0)
}

// fits reports whether a damaged run of length n can start at i.
func fits(s string, i, n int) bool {
	end := i + n
	if end > len(s) || strings.Contains(s[i:end], ".") {
		return false
	}
	return end == len(s) || s[end] != '#'
}

// Parse reads "springs groups" lines.
func Parse(input string) ([]Record, error) {
	var records []Record
	for _, line := range parse.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, parse.Errorf("invalid line %q", line)
		}
		if strings.Trim(fields[0], ".#?") != "" {
			return nil, parse.Errorf("unknown spring in %q", fields[0])
		}
		groups, err := parse.IntsSep(fields[1], ",")
		if err != nil {
			return nil, err
		}
		for _, g := range groups {
			if g <= 0 {
				return nil, parse.Errorf("group length must be positive: %q", fields[1])
			}
		}
		records = append(records, Record{Springs: fields[0], Groups: groups})
	}
	return records, nil
}

func solve(input string, unfold int) (int, error) {
	records, err := Parse(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range records {
		total += r.Unfold(unfold).Arrangements()
	}
	return total, nil
}

// Part1 sums the arrangements of every record.
func Part1(input string) (int, error) { return solve(input, 1) }

// Part2 sums the arrangements of every record unfolded five times.
func Part2(input string) (int, error) { return solve(input, 5) }

const sampleInput = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
`
