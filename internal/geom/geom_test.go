package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 30, Height: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{X: 25, Y: 20}, true},
		{"top-left corner", Point{X: 10, Y: 10}, true},
		{"bottom-right corner", Point{X: 40, Y: 30}, true},
		{"left of rect", Point{X: 9, Y: 20}, false},
		{"below rect", Point{X: 25, Y: 31}, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 5, Width: 10, Height: 10}

	u := a.Union(b)
	want := Rect{X: 0, Y: 0, Width: 30, Height: 15}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}

	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %+v, want %+v", got, b)
	}
}

func TestSegmentNear(t *testing.T) {
	p0 := Point{X: 100, Y: 100}
	p1 := Point{X: 200, Y: 100}

	if !SegmentNear(p0, p1, Point{X: 150, Y: 105}, 10) {
		t.Error("point 5 units off a horizontal segment should hit at radius 10")
	}
	if SegmentNear(p0, p1, Point{X: 150, Y: 115}, 10) {
		t.Error("point 15 units off a horizontal segment should miss at radius 10")
	}
	if SegmentNear(p0, p1, Point{X: 215, Y: 100}, 10) {
		t.Error("point past the segment end plus radius should miss")
	}
	if !SegmentNear(p0, p1, Point{X: 95, Y: 100}, 10) {
		t.Error("point within radius of the segment start should hit")
	}
}

// The proximity test is a bounding-box check, not exact distance. A point
// near the box of a diagonal segment but far from the segment itself still
// hits, and callers rely on that tolerance.
func TestSegmentNearDiagonalBox(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 100, Y: 100}

	if !SegmentNear(p0, p1, Point{X: 95, Y: 5}, 10) {
		t.Error("corner of the diagonal's bounding box should hit")
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: 4}
	b := Point{X: 1, Y: 2}

	if got := a.Add(b); got != (Point{X: 4, Y: 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Point{X: 2, Y: 2}) {
		t.Errorf("Sub = %v", got)
	}
}
