// Package core provides the primitive types shared by the engine, the game
// session and the terminal platform. It has no external dependencies so the
// turn logic stays pure and testable.
package core

import "fmt"

// Point is a cell address on the dungeon grid, or a step between two cells.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Cardinal step vectors.
var (
	StepUp    = Point{X: 0, Y: -1}
	StepDown  = Point{X: 0, Y: 1}
	StepLeft  = Point{X: -1, Y: 0}
	StepRight = Point{X: 1, Y: 0}
)

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// IsZero reports whether p is the (0,0) vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// StepToward returns the single-cell Chebyshev step from p toward target.
// Each component is clamped to [-1, 1], so diagonal steps are possible.
func (p Point) StepToward(target Point) Point {
	d := target.Sub(p)
	return Point{X: Clamp(d.X, -1, 1), Y: Clamp(d.Y, -1, 1)}
}

// IsCardinal reports whether p is one of the four unit axis vectors.
func (p Point) IsCardinal() bool {
	return Abs(p.X)+Abs(p.Y) == 1
}

// IsUnitStep reports whether both components are within [-1, 1].
func (p Point) IsUnitStep() bool {
	return Abs(p.X) <= 1 && Abs(p.Y) <= 1
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
