// Package schematic holds the diagram object model: modules, wires, the
// ordered scene they live in, and the selection set. The model is purely
// in-memory and single-threaded; all derived geometry (module rects, wire
// polylines) is recomputed synchronously on every mutation so it can never
// be read stale.
package schematic

import "github.com/gridwire/gridwire/backend-go/internal/geom"

// Kind discriminates the closed set of scene object variants.
type Kind int

const (
	KindModule Kind = iota
	KindWire
)

// String returns the wire-format name of the kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindWire:
		return "wire"
	default:
		return "unknown"
	}
}

// Object is the capability set shared by every placeable diagram entity.
// The variant set is closed: Module and Wire are the only implementations,
// and the editor dispatches on Kind exhaustively.
//
// The selected flag is deliberately not settable through this interface.
// Only the Selection set flips it, which keeps "flag set" and "member of
// selection" the same fact by construction.
type Object interface {
	ID() string
	Kind() Kind

	// HitTest reports whether a canvas point lands on the object.
	HitTest(p geom.Point) bool

	// MoveBy translates the object by a delta and refreshes its cached
	// geometry. MoveBy(0, 0) is a no-op.
	MoveBy(dx, dy float64)

	Selected() bool
	Label() string
	SetLabel(label string)

	// setSelected is package-private: see Selection.
	setSelected(sel bool)
}
