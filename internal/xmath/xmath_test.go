package xmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, int64(0), Abs(int64(0)))
	assert.Equal(t, 7, AbsDiff(2, 9))
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-12, 18, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 6, LCM(2, 3))
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 0, LCM[int]())
	assert.Equal(t, 0, LCM(4, 0))
	assert.Equal(t, 5, LCM(5))
	assert.Equal(t, 21165830176709, LCM(21409, 14363, 15989, 16531, 19241, 19783))
}

func TestSumProduct(t *testing.T) {
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, 0, Sum([]int(nil)))
	assert.Equal(t, 24, Product([]int{1, 2, 3, 4}))
	assert.Equal(t, 1, Product([]int(nil)))
}

func TestMinMax(t *testing.T) {
	m, ok := Min([]int{5, 2, 9})
	assert.True(t, ok)
	assert.Equal(t, 2, m)

	m, ok = Max([]int{5, 2, 9})
	assert.True(t, ok)
	assert.Equal(t, 9, m)

	_, ok = Min([]int{})
	assert.False(t, ok)
	_, ok = Max([]int{})
	assert.False(t, ok)
}
