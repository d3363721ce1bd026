// Package geometry provides the 2D primitives used by the collision engine:
// points, velocities, line segments and axis-aligned rectangles.
// All comparisons are epsilon-tolerant; nothing here allocates or fails.
package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the tolerance used for point equality, orientation and
// determinant checks.
const Epsilon = 0.00001

// Point is an immutable position in arena coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// Pt creates a point from its coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// vec returns the point as an r2 vector for arithmetic.
func (p Point) vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func fromVec(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return p.vec().Sub(other.vec()).Norm()
}

// Equal reports whether both coordinate deltas are below Epsilon.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) < Epsilon && math.Abs(p.Y-other.Y) < Epsilon
}
