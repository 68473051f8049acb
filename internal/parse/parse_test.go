package parse

import (
	"testing"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\r\nb\r\n\r\n"))
	assert.Nil(t, Lines(""))
	assert.Nil(t, Lines("\n\n"))
}

func TestBlocks(t *testing.T) {
	blocks := Blocks("a\nb\n\nc\n")
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, blocks)
	assert.Nil(t, Blocks(""))
}

func TestInts(t *testing.T) {
	got, err := Ints(" 83 86  6 31 ")
	require.NoError(t, err)
	assert.Equal(t, []int{83, 86, 6, 31}, got)

	got, err = Ints("-4 0 7")
	require.NoError(t, err)
	assert.Equal(t, []int{-4, 0, 7}, got)

	_, err = Ints("1 x 3")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestIntsSep(t *testing.T) {
	got, err := IntsSep("1,1,3", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, got)

	_, err = IntsSep("1,,3", ",")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestCut(t *testing.T) {
	a, b, err := Cut("Game 1: 3 blue", ":")
	require.NoError(t, err)
	assert.Equal(t, "Game 1", a)
	assert.Equal(t, " 3 blue", b)

	_, _, err = Cut("Game 1 3 blue", ":")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
