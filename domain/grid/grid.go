// Package grid provides points, compass directions and rectangular character
// grids for the map-shaped puzzles.
package grid

import (
	"fmt"
	"strings"

	"github.com/helixml/aoc2023/domain/puzzle"
	"github.com/helixml/aoc2023/internal/xmath"
)

// Point is an (X, Y) position with Y growing downwards.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Step returns the neighbour of p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Delta()) }

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return xmath.AbsDiff(p.X, q.X) + xmath.AbsDiff(p.Y, q.Y)
}

// String returns "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Direction is a compass direction.
type Direction int

// Directions in clockwise order.
const (
	North Direction = iota
	East
	South
	West
)

// Directions returns all four directions clockwise from North.
func Directions() []Direction { return []Direction{North, East, South, West} }

// Delta returns the unit step for the direction.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	default:
		return Point{X: -1, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// String returns N, E, S or W.
func (d Direction) String() string {
	return [...]string{"N", "E", "S", "W"}[d%4]
}

// Grid is a rectangular block of bytes addressed by Point.
type Grid struct {
	cells  [][]byte
	width  int
	height int
}

// New builds a Grid from lines. All lines must have the same width.
func New(lines []string) (Grid, error) {
	if len(lines) == 0 {
		return Grid{}, nil
	}
	width := len(lines[0])
	cells := make([][]byte, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return Grid{}, fmt.Errorf("%w: row %d has width %d, want %d", puzzle.ErrMalformedInput, y, len(line), width)
		}
		cells[y] = []byte(line)
	}
	return Grid{cells: cells, width: width, height: len(lines)}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// In reports whether p lies inside the grid.
func (g Grid) In(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// At returns the byte at p, or false when p is outside the grid.
func (g Grid) At(p Point) (byte, bool) {
	if !g.In(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Set writes b at p. Points outside the grid are ignored.
func (g Grid) Set(p Point, b byte) {
	if g.In(p) {
		g.cells[p.Y][p.X] = b
	}
}

// Find returns the first point holding b in row-major order.
func (g Grid) Find(b byte) (Point, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c == b {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every point holding b in row-major order.
func (g Grid) FindAll(b byte) []Point {
	var pts []Point
	for y, row := range g.cells {
		for x, c := range row {
			if c == b {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	cells := make([][]byte, len(g.cells))
	for y, row := range g.cells {
		cells[y] = append([]byte(nil), row...)
	}
	return Grid{cells: cells, width: g.width, height: g.height}
}

// Row returns a copy of row y.
func (g Grid) Row(y int) string { return string(g.cells[y]) }

// String renders the grid with newline-separated rows.
func (g Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}
	return b.String()
}
