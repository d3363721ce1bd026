package geometry

import "testing"

func TestLineIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Line
		expected bool
	}{
		{"crossing", L(0, 0, 10, 10), L(0, 10, 10, 0), true},
		{"shared endpoint", L(0, 0, 10, 10), L(10, 10, 20, 0), true},
		{"t junction", L(0, 5, 10, 5), L(5, 0, 5, 5), true},
		{"parallel apart", L(0, 0, 10, 0), L(0, 1, 10, 1), false},
		{"collinear overlap", L(0, 0, 10, 0), L(5, 0, 15, 0), true},
		{"collinear disjoint", L(0, 0, 4, 0), L(5, 0, 15, 0), false},
		{"near miss", L(0, 0, 10, 0), L(11, -1, 11, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLineIntersectionWith(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Line
		want   Point
		wantOK bool
	}{
		{"crossing", L(0, 0, 10, 10), L(0, 10, 10, 0), Pt(5, 5), true},
		{"shared endpoint", L(0, 0, 10, 10), L(10, 10, 20, 0), Pt(10, 10), true},
		{"horizontal vs vertical", L(40, 60, 200, 60), L(50, 50, 50, 70), Pt(50, 60), true},
		{"collinear overlap yields none", L(0, 0, 10, 0), L(5, 0, 15, 0), Point{}, false},
		{"disjoint", L(0, 0, 1, 1), L(5, 0, 6, 0), Point{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.IntersectionWith(tc.b)
			if ok != tc.wantOK {
				t.Fatalf("IntersectionWith() ok = %v, expected %v", ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("IntersectionWith() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestLineEqualUndirected(t *testing.T) {
	a := L(1, 2, 3, 4)
	if !a.Equal(L(3, 4, 1, 2)) {
		t.Error("reversed segment should be equal")
	}
	if a.Equal(L(1, 2, 3, 5)) {
		t.Error("different segment should not be equal")
	}
}

func TestLineLengthAndMiddle(t *testing.T) {
	l := L(0, 0, 6, 8)
	if l.Length() != 10 {
		t.Errorf("Length() = %f, expected 10", l.Length())
	}
	if !l.Middle().Equal(Pt(3, 4)) {
		t.Errorf("Middle() = %+v, expected (3, 4)", l.Middle())
	}
}

func TestLineIntersectsBoth(t *testing.T) {
	l := L(0, 5, 10, 5)
	if !l.IntersectsBoth(L(2, 0, 2, 10), L(8, 0, 8, 10)) {
		t.Error("IntersectsBoth() should be true")
	}
	if l.IntersectsBoth(L(2, 0, 2, 10), L(20, 0, 20, 10)) {
		t.Error("IntersectsBoth() should be false when one misses")
	}
}

func TestClosestIntersectionToStart(t *testing.T) {
	rect := R(50, 50, 50, 20)

	got, ok := L(40, 60, 200, 60).ClosestIntersectionToStart(rect)
	if !ok || !got.Equal(Pt(50, 60)) {
		t.Errorf("ClosestIntersectionToStart() = %+v, %v, expected (50, 60)", got, ok)
	}

	got, ok = L(200, 60, 40, 60).ClosestIntersectionToStart(rect)
	if !ok || !got.Equal(Pt(100, 60)) {
		t.Errorf("ClosestIntersectionToStart() reversed = %+v, %v, expected (100, 60)", got, ok)
	}

	if _, ok := L(0, 0, 10, 10).ClosestIntersectionToStart(rect); ok {
		t.Error("expected no intersection for a segment far from the rectangle")
	}
}
