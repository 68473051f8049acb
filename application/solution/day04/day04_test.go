package day04

import (
	"testing"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	cards, err := Parse(sampleInput)
	require.NoError(t, err)
	var got []int
	for _, c := range cards {
		got = append(got, c.Matches())
	}
	assert.Equal(t, []int{4, 2, 2, 1, 0, 0}, got)
}

func TestPart1(t *testing.T) {
	got, err := Part1(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{
		"Card 1: 1 2 3",
		"Card x: 1 | 2",
		"Ticket 1: 1 | 2",
		"Card 1: 1 a | 2",
	} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
