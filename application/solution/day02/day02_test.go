package day02

import (
	"testing"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	games, err := Parse("Game 7: 3 blue, 4 red; 2 green\n")
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 7, games[0].ID)
	assert.Equal(t, []Subset{{Red: 4, Blue: 3}, {Green: 2}}, games[0].Subsets)
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game 1: 3 purple",
		"Game 1: blue",
	} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 2286, got)
}

func TestMinimum(t *testing.T) {
	games, err := Parse(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, Subset{Red: 4, Green: 2, Blue: 6}, games[0].Minimum())
	assert.Equal(t, 48, games[0].Minimum().Power())
}
