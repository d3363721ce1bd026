package geometry

// Rectangle is an axis-aligned box given by its upper-left corner and size.
type Rectangle struct {
	UpperLeft Point
	Width     float64
	Height    float64
}

// NewRectangle creates a rectangle. Negative sizes are clamped to zero.
func NewRectangle(upperLeft Point, width, height float64) Rectangle {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rectangle{UpperLeft: upperLeft, Width: width, Height: height}
}

// R creates a rectangle from raw coordinates.
func R(x, y, w, h float64) Rectangle {
	return NewRectangle(Pt(x, y), w, h)
}

// Left returns the x-coordinate of the left edge.
func (r Rectangle) Left() float64 { return r.UpperLeft.X }

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() float64 { return r.UpperLeft.X + r.Width }

// Top returns the y-coordinate of the top edge.
func (r Rectangle) Top() float64 { return r.UpperLeft.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 { return r.UpperLeft.Y + r.Height }

// BottomRight returns the lower-right corner.
func (r Rectangle) BottomRight() Point {
	return Pt(r.Right(), r.Bottom())
}

// Center returns the center point.
func (r Rectangle) Center() Point {
	return Pt(r.UpperLeft.X+r.Width/2, r.UpperLeft.Y+r.Height/2)
}

// Moved returns the same rectangle with its left edge at x.
func (r Rectangle) Moved(x float64) Rectangle {
	return Rectangle{UpperLeft: Pt(x, r.UpperLeft.Y), Width: r.Width, Height: r.Height}
}

// Edges returns the boundary segments in the order top, bottom, left, right.
func (r Rectangle) Edges() [4]Line {
	ul := r.UpperLeft
	ur := Pt(r.Right(), r.Top())
	ll := Pt(r.Left(), r.Bottom())
	lr := r.BottomRight()
	return [4]Line{
		NewLine(ul, ur),
		NewLine(ll, lr),
		NewLine(ul, ll),
		NewLine(ur, lr),
	}
}

// IntersectionPoints returns the distinct points where line meets the
// rectangle boundary, in edge order. Points equal under Point.Equal are
// reported once.
func (r Rectangle) IntersectionPoints(line Line) []Point {
	var points []Point
	for _, edge := range r.Edges() {
		p, ok := line.IntersectionWith(edge)
		if !ok || containsPoint(points, p) {
			continue
		}
		points = append(points, p)
	}
	return points
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q.Equal(p) {
			return true
		}
	}
	return false
}
