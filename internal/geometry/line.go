package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Orientation classifies the turn made by an ordered triple of points.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// Line is a segment between two points. Its identity is undirected.
type Line struct {
	Start Point
	End   Point
}

// NewLine creates a segment from start to end.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// L creates a segment from raw coordinates.
func L(x1, y1, x2, y2 float64) Line {
	return Line{Start: Pt(x1, y1), End: Pt(x2, y2)}
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Middle returns the midpoint of the segment.
func (l Line) Middle() Point {
	return fromVec(l.Start.vec().Add(l.End.vec()).Mul(0.5))
}

// Equal reports whether both segments share endpoints, in either order.
func (l Line) Equal(other Line) bool {
	return (l.Start.Equal(other.Start) && l.End.Equal(other.End)) ||
		(l.Start.Equal(other.End) && l.End.Equal(other.Start))
}

// orientation returns the orientation of (p, q, r). Values within Epsilon
// of zero are collinear.
func orientation(p, q, r Point) Orientation {
	cross := q.vec().Sub(p.vec()).Cross(r.vec().Sub(q.vec()))
	if math.Abs(cross) < Epsilon {
		return Collinear
	}
	if cross < 0 {
		return Clockwise
	}
	return CounterClockwise
}

// onSegment reports whether q lies inside the bounding box of segment pr,
// widened by Epsilon.
func onSegment(p, q, r Point) bool {
	return r2.RectFromPoints(p.vec(), r.vec()).ExpandedByMargin(Epsilon).ContainsPoint(q.vec())
}

// Intersects reports whether the two segments touch or cross.
func (l Line) Intersects(other Line) bool {
	p1, q1 := l.Start, l.End
	p2, q2 := other.Start, other.End

	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases
	switch {
	case o1 == Collinear && onSegment(p1, p2, q1):
		return true
	case o2 == Collinear && onSegment(p1, q2, q1):
		return true
	case o3 == Collinear && onSegment(p2, p1, q2):
		return true
	case o4 == Collinear && onSegment(p2, q1, q2):
		return true
	}
	return false
}

// IntersectsBoth reports whether this segment intersects both a and b.
func (l Line) IntersectsBoth(a, b Line) bool {
	return l.Intersects(a) && l.Intersects(b)
}

// IntersectionWith returns the crossing point of the two segments.
// Parallel and collinear segments report no point even when they overlap.
func (l Line) IntersectionWith(other Line) (Point, bool) {
	if !l.Intersects(other) {
		return Point{}, false
	}

	d1 := l.Start.vec().Sub(l.End.vec())
	d2 := other.Start.vec().Sub(other.End.vec())

	denom := d1.Cross(d2)
	if math.Abs(denom) < Epsilon {
		return Point{}, false
	}

	c1 := l.Start.vec().Cross(l.End.vec())
	c2 := other.Start.vec().Cross(other.End.vec())

	return fromVec(d2.Mul(c1).Sub(d1.Mul(c2)).Mul(1 / denom)), true
}

// ClosestIntersectionToStart returns the intersection with rect nearest to
// the segment start. On an exact distance tie the first point found wins.
func (l Line) ClosestIntersectionToStart(rect Rectangle) (Point, bool) {
	points := rect.IntersectionPoints(l)
	if len(points) == 0 {
		return Point{}, false
	}

	closest := points[0]
	minDist := l.Start.Distance(closest)
	for _, p := range points[1:] {
		if d := l.Start.Distance(p); d < minDist {
			minDist = d
			closest = p
		}
	}
	return closest, true
}
