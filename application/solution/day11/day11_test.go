package day11

import (
	"testing"

	"github.com/helixml/aoc2023/domain/grid"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, lines ...string) grid.Grid {
	t.Helper()
	g, err := grid.New(lines)
	require.NoError(t, err)
	return g
}

func TestGalaxies(t *testing.T) {
	got := Galaxies(mustGrid(t, ".#.", "#.#"))
	assert.Equal(t, []grid.Point{grid.Pt(1, 0), grid.Pt(0, 1), grid.Pt(2, 1)}, got)
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []grid.Point
	}{
		{"empty column", []string{"..", "#.", ".."}, []grid.Point{grid.Pt(0, 2)}},
		{"nothing empty", []string{"#.", ".#"}, []grid.Point{grid.Pt(0, 0), grid.Pt(1, 1)}},
		{"gap between", []string{"#..#"}, []grid.Point{grid.Pt(0, 0), grid.Pt(5, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(mustGrid(t, tt.lines...), 2))
		})
	}
}

func TestPairs(t *testing.T) {
	collect := func(items []int) [][2]int {
		var out [][2]int
		Pairs(items, func(a, b int) { out = append(out, [2]int{a, b}) })
		return out
	}
	assert.Empty(t, collect(nil))
	assert.Empty(t, collect([]int{1}))
	assert.Equal(t, [][2]int{{1, 2}}, collect([]int{1, 2}))
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}, {2, 3}}, collect([]int{1, 2, 3}))
}

func TestSumDistances(t *testing.T) {
	tests := []struct {
		factor int
		want   int
	}{
		{2, 374},
		{10, 1030},
		{100, 8410},
	}
	for _, tt := range tests {
		got, err := SumDistances(sampleInput, tt.factor)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "factor %d", tt.factor)
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 374, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 82000210, got)
}

func TestSumDistances_Malformed(t *testing.T) {
	_, err := SumDistances("#.x\n", 2)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = SumDistances("#.\n#\n", 2)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
