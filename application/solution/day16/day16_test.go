package day16

import (
	"testing"

	"github.com/helixml/aoc2023/domain/grid"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflect(t *testing.T) {
	tests := []struct {
		tile byte
		in   grid.Direction
		want []grid.Direction
	}{
		{'.', grid.East, []grid.Direction{grid.East}},
		{'/', grid.East, []grid.Direction{grid.North}},
		{'/', grid.North, []grid.Direction{grid.East}},
		{'/', grid.South, []grid.Direction{grid.West}},
		{'/', grid.West, []grid.Direction{grid.South}},
		{'\\', grid.East, []grid.Direction{grid.South}},
		{'\\', grid.North, []grid.Direction{grid.West}},
		{'\\', grid.South, []grid.Direction{grid.East}},
		{'\\', grid.West, []grid.Direction{grid.North}},
		{'|', grid.North, []grid.Direction{grid.North}},
		{'|', grid.East, []grid.Direction{grid.North, grid.South}},
		{'-', grid.West, []grid.Direction{grid.West}},
		{'-', grid.South, []grid.Direction{grid.East, grid.West}},
	}
	for _, tt := range tests {
		t.Run(string(tt.tile)+tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, deflect(tt.tile, tt.in))
		})
	}
}

func TestEnergized_Entry(t *testing.T) {
	g, err := parseContraption(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 51, Energized(g, Beam{At: grid.Pt(3, 0), Dir: grid.South}))
	assert.Len(t, Entries(g), 40)
}

func TestPart1(t *testing.T) {
	got, err := Part1(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 46, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 51, got)
}

func TestPart1_Malformed(t *testing.T) {
	_, err := Part1("..x\n")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	_, err = Part1("")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
