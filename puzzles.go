package aoc

import (
	"github.com/helixml/aoc2023/application/solution/day01"
	"github.com/helixml/aoc2023/application/solution/day02"
	"github.com/helixml/aoc2023/application/solution/day03"
	"github.com/helixml/aoc2023/application/solution/day04"
	"github.com/helixml/aoc2023/application/solution/day05"
	"github.com/helixml/aoc2023/application/solution/day06"
	"github.com/helixml/aoc2023/application/solution/day07"
	"github.com/helixml/aoc2023/application/solution/day08"
	"github.com/helixml/aoc2023/application/solution/day09"
	"github.com/helixml/aoc2023/application/solution/day10"
	"github.com/helixml/aoc2023/application/solution/day11"
	"github.com/helixml/aoc2023/application/solution/day12"
	"github.com/helixml/aoc2023/application/solution/day13"
	"github.com/helixml/aoc2023/application/solution/day14"
	"github.com/helixml/aoc2023/application/solution/day15"
	"github.com/helixml/aoc2023/application/solution/day16"
	"github.com/helixml/aoc2023/domain/puzzle"
)

// registerPuzzles registers every solved day, then any extra puzzles.
func (c *Client) registerPuzzles(extra ...puzzle.Puzzle) {
	for _, p := range []puzzle.Puzzle{
		day01.Puzzle(),
		day02.Puzzle(),
		day03.Puzzle(),
		day04.Puzzle(),
		day05.Puzzle(),
		day06.Puzzle(),
		day07.Puzzle(),
		day08.Puzzle(),
		day09.Puzzle(),
		day10.Puzzle(),
		day11.Puzzle(),
		day12.Puzzle(),
		day13.Puzzle(),
		day14.Puzzle(),
		day15.Puzzle(),
		day16.Puzzle(),
	} {
		c.registry.Register(p)
	}
	for _, p := range extra {
		c.registry.Register(p)
	}
}
