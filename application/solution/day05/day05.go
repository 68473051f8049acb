// Package day05 solves "If You Give A Seed A Fertilizer" on top of the
// rangemap pipeline.
package day05

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/domain/rangemap"
	"github.com/helixml/aoc2023/internal/parse"
	"github.com/helixml/aoc2023/internal/xmath"
)

// Puzzle returns the registered puzzle for day 5.
func Puzzle() puzzle.Puzzle {
	return puzzle.New(5, "If You Give A Seed A Fertilizer", Part1, Part2,
		puzzle.NewSample(puzzle.PartOne, "example", sampleInput, 35),
		puzzle.NewSample(puzzle.PartTwo, "example", sampleInput, 46),
	)
}

var mapHeader = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds    []int
	Pipeline rangemap.Pipeline
}

// SeedRanges reads the seed list as start/length pairs.
func (a Almanac) SeedRanges() ([]rangemap.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, parse.Errorf("odd number of seed values: %d", len(a.Seeds))
	}
	out := make([]rangemap.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] <= 0 {
			return nil, parse.Errorf("seed range %d has non-positive length %d", i/2, a.Seeds[i+1])
		}
		out = append(out, rangemap.Interval{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}
	return out, nil
}

// Parse reads the seeds header and every mapping section.
func Parse(input string) (Almanac, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return Almanac{}, parse.Errorf("empty almanac")
	}
	if len(blocks[0]) != 1 {
		return Almanac{}, parse.Errorf("seeds section must be a single line")
	}
	seedText, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok {
		return Almanac{}, parse.Errorf("missing seeds header in %q", blocks[0][0])
	}
	seeds, err := parse.Ints(seedText)
	if err != nil {
		return Almanac{}, err
	}

	tables := make([]rangemap.Table, 0, len(blocks)-1)
	for _, block := range blocks[1:] {
		t, err := parseTable(block)
		if err != nil {
			return Almanac{}, err
		}
		tables = append(tables, t)
	}
	pipeline, err := rangemap.NewPipeline(tables...)
	if err != nil {
		return Almanac{}, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	return Almanac{Seeds: seeds, Pipeline: pipeline}, nil
}

func parseTable(block []string) (rangemap.Table, error) {
	m := mapHeader.FindStringSubmatch(block[0])
	if m == nil {
		return rangemap.Table{}, parse.Errorf("bad map header %q", block[0])
	}
	ranges := make([]rangemap.ConversionRange, 0, len(block)-1)
	for _, line := range block[1:] {
		nums, err := parse.Ints(line)
		if err != nil {
			return rangemap.Table{}, err
		}
		if len(nums) != 3 {
			return rangemap.Table{}, parse.Errorf("range line needs three integers: %q", line)
		}
		ranges = append(ranges, rangemap.NewConversionRange(nums[0], nums[1], nums[2]))
	}
	t, err := rangemap.NewTable(m[1], m[2], ranges)
	if err != nil {
		return rangemap.Table{}, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	return t, nil
}

// Part1 maps each seed as a single value and returns the lowest location.
func Part1(input string) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	locations := make([]int, 0, len(a.Seeds))
	for _, s := range a.Seeds {
		locations = append(locations, a.Pipeline.MapPoint(s))
	}
	v, ok := xmath.Min(locations)
	if !ok {
		return 0, parse.Errorf("no seeds")
	}
	return v, nil
}

// Part2 maps the seed ranges and returns the lowest location start.
func Part2(input string) (int, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	intervals, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	return lowest(a.Pipeline, intervals)
}

func lowest(p rangemap.Pipeline, in []rangemap.Interval) (int, error) {
	v, ok := rangemap.MinStart(p.MapIntervals(in))
	if !ok {
		return 0, parse.Errorf("no seeds")
	}
	return v, nil
}

const sampleInput = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`
