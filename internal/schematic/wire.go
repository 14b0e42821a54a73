package schematic

import (
	"math"

	"github.com/gridwire/gridwire/backend-go/internal/geom"
	"github.com/gridwire/gridwire/backend-go/internal/typeid"
)

// HitRadius is the click tolerance, in canvas units, around wire segments.
const HitRadius = 10.0

// Wire is an ordered polyline route. Every segment is purely horizontal or
// vertical: AddPoint snaps each new point into axis alignment with the
// previous one, so orthogonality holds by construction.
type Wire struct {
	id       string
	points   []geom.Point
	label    string
	selected bool

	// polyline mirrors points one vertex per entry and is refreshed on
	// every mutation. Renderers read it; the model never hands out points
	// directly.
	polyline []geom.Point
}

// NewWire creates an empty wire.
func NewWire() *Wire {
	w := &Wire{id: typeid.NewWireID()}
	w.recompute()
	return w
}

func (w *Wire) recompute() {
	w.polyline = make([]geom.Point, len(w.points))
	copy(w.polyline, w.points)
}

func (w *Wire) ID() string     { return w.id }
func (w *Wire) Kind() Kind     { return KindWire }
func (w *Wire) Selected() bool { return w.selected }

func (w *Wire) setSelected(sel bool) { w.selected = sel }

func (w *Wire) Label() string         { return w.label }
func (w *Wire) SetLabel(label string) { w.label = label }

// Len returns the number of routing points.
func (w *Wire) Len() int { return len(w.points) }

// Polyline returns the cached vertex sequence. Callers must not mutate it.
func (w *Wire) Polyline() []geom.Point { return w.polyline }

// AddPoint appends a routing point. The first point is taken verbatim;
// every later point is snapped into axis alignment with the previous point
// q: whichever axis the pointer moved the shorter distance along collapses
// onto q, so the new segment is purely horizontal or vertical. The user
// never has to move the pointer exactly straight — the intended orthogonal
// leg is inferred.
func (w *Wire) AddPoint(p geom.Point) {
	if len(w.points) == 0 {
		w.points = append(w.points, p)
		w.recompute()
		return
	}

	q := w.points[len(w.points)-1]
	if math.Abs(p.X-q.X) < math.Abs(p.Y-q.Y) {
		p.X = q.X
	} else {
		p.Y = q.Y
	}
	w.points = append(w.points, p)
	w.recompute()
}

// RemovePoint deletes the routing point at index. Negative indices count
// from the end (-1 is the last point). An out-of-range index is a no-op:
// the editor must stay usable after any malformed gesture.
func (w *Wire) RemovePoint(index int) {
	if index < 0 {
		index += len(w.points)
	}
	if index < 0 || index >= len(w.points) {
		return
	}
	w.points = append(w.points[:index], w.points[index+1:]...)
	w.recompute()
}

// MoveBy translates every routing point.
func (w *Wire) MoveBy(dx, dy float64) {
	for i := range w.points {
		w.points[i].X += dx
		w.points[i].Y += dy
	}
	w.recompute()
}

// Bounds returns the wire's interactive footprint: the bounding box of its
// routing points grown by HitRadius on every side. A wire with no points
// has an empty footprint. Growing by the hit radius keeps the rect
// non-degenerate for straight wires, which would otherwise collapse to
// zero width or height.
func (w *Wire) Bounds() geom.Rect {
	if len(w.points) == 0 {
		return geom.Rect{}
	}
	minX, minY := w.points[0].X, w.points[0].Y
	maxX, maxY := minX, minY
	for _, p := range w.points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return geom.Rect{
		X:      minX - HitRadius,
		Y:      minY - HitRadius,
		Width:  maxX - minX + 2*HitRadius,
		Height: maxY - minY + 2*HitRadius,
	}
}

// HitTest reports whether p falls within HitRadius of any segment. A wire
// with fewer than two points has no segments and never hits.
func (w *Wire) HitTest(p geom.Point) bool {
	for i := 0; i+1 < len(w.points); i++ {
		if geom.SegmentNear(w.points[i], w.points[i+1], p, HitRadius) {
			return true
		}
	}
	return false
}
