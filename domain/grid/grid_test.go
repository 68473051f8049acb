package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint(t *testing.T) {
	p := Pt(1, 6)
	assert.Equal(t, Pt(5, 11), p.Add(Pt(4, 5)))
	assert.Equal(t, 9, p.Manhattan(Pt(5, 11)))
	assert.Equal(t, 9, Pt(5, 11).Manhattan(p))
	assert.Equal(t, "1,6", p.String())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Pt(2, 1), Pt(2, 2).Step(North))
	assert.Equal(t, Pt(3, 2), Pt(2, 2).Step(East))
	assert.Equal(t, Pt(2, 3), Pt(2, 2).Step(South))
	assert.Equal(t, Pt(1, 2), Pt(2, 2).Step(West))

	for _, d := range Directions() {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, Pt(0, 0), d.Delta().Add(d.Opposite().Delta()))
	}
	assert.Equal(t, "S", North.Opposite().String())
}

func TestGrid(t *testing.T) {
	g, err := New([]string{".#.", "#.#"})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	b, ok := g.At(Pt(1, 0))
	assert.True(t, ok)
	assert.Equal(t, byte('#'), b)

	_, ok = g.At(Pt(3, 0))
	assert.False(t, ok)
	_, ok = g.At(Pt(0, -1))
	assert.False(t, ok)

	p, ok := g.Find('#')
	assert.True(t, ok)
	assert.Equal(t, Pt(1, 0), p)

	want := []Point{Pt(1, 0), Pt(0, 1), Pt(2, 1)}
	if diff := cmp.Diff(want, g.FindAll('#')); diff != "" {
		t.Errorf("FindAll mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g, err := New([]string{"ab", "cd"})
	require.NoError(t, err)

	c := g.Clone()
	c.Set(Pt(0, 0), 'z')

	assert.Equal(t, "ab\ncd", g.String())
	assert.Equal(t, "zb\ncd", c.String())
	assert.Equal(t, "cd", c.Row(1))
}

func TestGrid_Ragged(t *testing.T) {
	_, err := New([]string{"abc", "de"})
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
