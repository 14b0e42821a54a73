package schematic

import (
	"github.com/gridwire/gridwire/backend-go/internal/geom"
	"github.com/gridwire/gridwire/backend-go/internal/typeid"
)

// MinSize is the smallest allowed module dimension. Size requests below it
// are clamped, never rejected, so a module always has a visible body.
const MinSize = 10.0

// PortType classifies a module port's direction.
type PortType int

const (
	PortUndef PortType = iota - 1
	PortInput
	PortOutput
	PortInout
)

// String returns the wire-format name of the port type.
func (t PortType) String() string {
	switch t {
	case PortInput:
		return "input"
	case PortOutput:
		return "output"
	case PortInout:
		return "inout"
	default:
		return "undef"
	}
}

// Port is a named connection point owned by a module. Offset is relative to
// the module's top-left anchor so ports travel with the module for free.
// Ports carry no connectivity semantics here; they are render data.
type Port struct {
	Name   string
	Width  int
	Type   PortType
	Offset geom.Point
}

// Module is an axis-aligned labeled rectangle.
type Module struct {
	id       string
	pos      geom.Point
	size     geom.Point
	label    string
	selected bool
	ports    []Port

	// rect is derived from pos+size and refreshed on every mutation.
	rect geom.Rect
}

// NewModule creates a module at pos. Size is clamped to MinSize per axis.
func NewModule(pos, size geom.Point) *Module {
	m := &Module{
		id:   typeid.NewModuleID(),
		pos:  pos,
		size: clampSize(size),
	}
	m.recompute()
	return m
}

func clampSize(s geom.Point) geom.Point {
	return geom.Point{X: max(s.X, MinSize), Y: max(s.Y, MinSize)}
}

func (m *Module) recompute() {
	m.rect = geom.RectFromCorner(m.pos, m.size)
}

func (m *Module) ID() string     { return m.id }
func (m *Module) Kind() Kind     { return KindModule }
func (m *Module) Selected() bool { return m.selected }

func (m *Module) setSelected(sel bool) { m.selected = sel }

func (m *Module) Label() string         { return m.label }
func (m *Module) SetLabel(label string) { m.label = label }

func (m *Module) Position() geom.Point { return m.pos }
func (m *Module) Size() geom.Point     { return m.size }

// Rect returns the cached bounding rectangle.
func (m *Module) Rect() geom.Rect { return m.rect }

// SetPosition moves the top-left anchor.
func (m *Module) SetPosition(p geom.Point) {
	m.pos = p
	m.recompute()
}

// SetSize resizes the module, clamping each dimension to MinSize.
func (m *Module) SetSize(s geom.Point) {
	m.size = clampSize(s)
	m.recompute()
}

// MoveBy translates the module.
func (m *Module) MoveBy(dx, dy float64) {
	m.pos.X += dx
	m.pos.Y += dy
	m.recompute()
}

// HitTest reports whether p is inside the module's rectangle.
func (m *Module) HitTest(p geom.Point) bool {
	return m.rect.Contains(p)
}

// AddPort attaches a port to the module.
func (m *Module) AddPort(p Port) {
	m.ports = append(m.ports, p)
}

// Ports returns the module's ports in attachment order.
func (m *Module) Ports() []Port { return m.ports }

// PortPosition returns a port's absolute canvas position.
func (m *Module) PortPosition(p Port) geom.Point {
	return m.pos.Add(p.Offset)
}
