// Package geom provides the 2D value types shared by the schematic model:
// points, axis-aligned rectangles, and the segment proximity test used for
// wire hit-testing.
package geom

// Point is a 2D canvas coordinate. Value type, no identity.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromCorner builds a rect from a top-left anchor and a size vector.
func RectFromCorner(pos, size Point) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Contains checks if a point is inside the rect (closed bounds).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// SegmentNear reports whether pt lies within radius of the axis-aligned
// bounding box of segment (p0,p1), expanded by radius on both axes.
//
// This is intentionally a box test rather than true point-to-segment
// distance: along diagonal segments it is more permissive than exact
// distance, and the editor's click tolerance depends on that behavior.
func SegmentNear(p0, p1, pt Point, radius float64) bool {
	box := Rect{
		X:      min(p0.X, p1.X) - radius,
		Y:      min(p0.Y, p1.Y) - radius,
		Width:  max(p0.X, p1.X) - min(p0.X, p1.X) + 2*radius,
		Height: max(p0.Y, p1.Y) - min(p0.Y, p1.Y) + 2*radius,
	}
	return box.Contains(pt)
}
