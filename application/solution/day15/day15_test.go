package day15

import (
	"testing"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"HASH", 52},
		{"rn=1", 30},
		{"cm-", 253},
		{"rn", 0},
		{"qp", 1},
		{"pc", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Hash(tt.in), tt.in)
	}
}

func TestBoxes_Apply(t *testing.T) {
	var b Boxes
	for _, s := range []string{"rn=1", "cm-", "qp=3", "cm=2", "qp-", "pc=4", "ot=9", "ab=5", "pc-", "pc=6", "ot=7"} {
		require.NoError(t, b.Apply(s))
	}
	assert.Equal(t, []Lens{{"rn", 1}, {"cm", 2}}, b[0])
	assert.Equal(t, []Lens{{"ot", 7}, {"ab", 5}, {"pc", 6}}, b[3])
	assert.Empty(t, b[1])
	assert.Equal(t, 145, b.FocusingPower())
}

func TestPart1(t *testing.T) {
	got, err := Part1(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 1320, got)
}

func TestPart1_WrappedInput(t *testing.T) {
	got, err := Part1("rn=1,cm-,qp=3,cm=2,\nqp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n")
	require.NoError(t, err)
	assert.Equal(t, 1320, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(sampleInput)
	require.NoError(t, err)
	assert.Equal(t, 145, got)
}

func TestPart2_Malformed(t *testing.T) {
	for _, in := range []string{"rn", "rn=x", "rn=0", "rn=1,,cm-", ""} {
		_, err := Part2(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
