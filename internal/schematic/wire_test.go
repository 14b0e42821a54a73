package schematic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gridwire/gridwire/backend-go/internal/geom"
)

func TestWireAddPointAligns(t *testing.T) {
	w := NewWire()
	w.AddPoint(geom.Point{X: 100, Y: 200})
	w.AddPoint(geom.Point{X: 100, Y: 350})

	want := []geom.Point{{X: 100, Y: 200}, {X: 100, Y: 350}}
	if diff := cmp.Diff(want, w.Polyline()); diff != "" {
		t.Errorf("already-aligned points changed (-want +got):\n%s", diff)
	}

	// From (100,350), the pointer at (200,360) moved 100 in x but only 10
	// in y, so the y leg collapses: the point lands at (200,350).
	w.AddPoint(geom.Point{X: 200, Y: 360})
	want = append(want, geom.Point{X: 200, Y: 350})
	if diff := cmp.Diff(want, w.Polyline()); diff != "" {
		t.Errorf("aligned append (-want +got):\n%s", diff)
	}
}

func TestWireSegmentsStayOrthogonal(t *testing.T) {
	w := NewWire()
	for _, p := range []geom.Point{
		{X: 0, Y: 0}, {X: 13, Y: 40}, {X: 90, Y: 55}, {X: 91, Y: -3}, {X: 91, Y: -3},
	} {
		w.AddPoint(p)

		pts := w.Polyline()
		if len(pts) < 2 {
			continue
		}
		a, b := pts[len(pts)-2], pts[len(pts)-1]
		if a.X != b.X && a.Y != b.Y {
			t.Fatalf("segment %v -> %v is diagonal", a, b)
		}
	}
}

func TestWireRemovePoint(t *testing.T) {
	w := NewWire()
	w.AddPoint(geom.Point{X: 0, Y: 0})
	w.AddPoint(geom.Point{X: 0, Y: 50})
	w.AddPoint(geom.Point{X: 70, Y: 50})

	w.RemovePoint(-1)
	want := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 50}}
	if diff := cmp.Diff(want, w.Polyline()); diff != "" {
		t.Errorf("after RemovePoint(-1) (-want +got):\n%s", diff)
	}

	// Out of range either way is a no-op.
	w.RemovePoint(2)
	w.RemovePoint(-3)
	if diff := cmp.Diff(want, w.Polyline()); diff != "" {
		t.Errorf("out-of-range RemovePoint mutated wire (-want +got):\n%s", diff)
	}

	w.RemovePoint(0)
	if diff := cmp.Diff([]geom.Point{{X: 0, Y: 50}}, w.Polyline()); diff != "" {
		t.Errorf("after RemovePoint(0) (-want +got):\n%s", diff)
	}
}

func TestWireMoveBy(t *testing.T) {
	w := NewWire()
	w.AddPoint(geom.Point{X: 10, Y: 10})
	w.AddPoint(geom.Point{X: 10, Y: 60})

	w.MoveBy(5, -10)
	want := []geom.Point{{X: 15, Y: 0}, {X: 15, Y: 50}}
	if diff := cmp.Diff(want, w.Polyline()); diff != "" {
		t.Errorf("after MoveBy (-want +got):\n%s", diff)
	}

	before := w.Polyline()
	w.MoveBy(0, 0)
	if diff := cmp.Diff(before, w.Polyline()); diff != "" {
		t.Errorf("MoveBy(0,0) changed polyline (-want +got):\n%s", diff)
	}
}

func TestWireHitTest(t *testing.T) {
	w := NewWire()
	if w.HitTest(geom.Point{X: 0, Y: 0}) {
		t.Error("empty wire should never hit")
	}

	w.AddPoint(geom.Point{X: 100, Y: 100})
	if w.HitTest(geom.Point{X: 100, Y: 100}) {
		t.Error("single-point wire has no segments and should never hit")
	}

	w.AddPoint(geom.Point{X: 100, Y: 200})
	w.AddPoint(geom.Point{X: 250, Y: 200})

	if !w.HitTest(geom.Point{X: 105, Y: 150}) {
		t.Error("point near the vertical segment should hit")
	}
	if !w.HitTest(geom.Point{X: 180, Y: 208}) {
		t.Error("point near the horizontal segment should hit")
	}
	if w.HitTest(geom.Point{X: 180, Y: 100}) {
		t.Error("point far from every segment should miss")
	}
}

func TestWirePolylineMirrorsPoints(t *testing.T) {
	w := NewWire()
	coords := []geom.Point{{X: 1, Y: 2}, {X: 1, Y: 30}, {X: 44, Y: 30}}
	for _, p := range coords {
		w.AddPoint(p)
	}

	if w.Len() != len(w.Polyline()) {
		t.Fatalf("polyline length %d != point count %d", len(w.Polyline()), w.Len())
	}
	for i, v := range w.Polyline() {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) {
			t.Fatalf("vertex %d is NaN", i)
		}
	}
}

func TestWireBounds(t *testing.T) {
	w := NewWire()
	if !w.Bounds().IsEmpty() {
		t.Error("a wire with no points should have an empty footprint")
	}

	w.AddPoint(geom.Point{X: 100, Y: 250})
	w.AddPoint(geom.Point{X: 100, Y: 350})
	w.AddPoint(geom.Point{X: 300, Y: 350})

	want := geom.Rect{X: 90, Y: 240, Width: 220, Height: 120}
	if diff := cmp.Diff(want, w.Bounds()); diff != "" {
		t.Errorf("footprint (-want +got):\n%s", diff)
	}

	// A single straight segment still has a usable footprint: the hit
	// radius keeps it from collapsing to zero width.
	v := NewWire()
	v.AddPoint(geom.Point{X: 50, Y: 0})
	v.AddPoint(geom.Point{X: 50, Y: 200})
	if v.Bounds().IsEmpty() {
		t.Error("a straight wire's footprint should not be empty")
	}
}
