// Package editor implements the modal interaction state machine that turns
// normalized pointer and key events into schematic model mutations. It
// mirrors the command/query split of a headless engine: the windowing
// collaborator feeds events in, the renderer reads an ordered snapshot out.
//
// The editor is single-threaded by contract: one event is processed to
// completion before the next is admitted, and the snapshot is only valid to
// read between events.
package editor

import (
	"github.com/gridwire/gridwire/backend-go/internal/geom"
	"github.com/gridwire/gridwire/backend-go/internal/schematic"
)

// Mode is the editor's interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDrawWire
	ModeDrawModule
)

// String returns the wire-format name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDrawWire:
		return "drawWire"
	case ModeDrawModule:
		return "drawModule"
	default:
		return "unknown"
	}
}

// Editor owns the scene, the selection, and the interaction mode.
type Editor struct {
	scene     *schematic.Scene
	selection *schematic.Selection

	mode Mode

	// active is the object under construction. Only meaningful in the two
	// drawing modes; nil otherwise.
	active schematic.Object

	// lastPointer is the most recent pointer position seen in any mode.
	// Normal-mode drags measure their delta from it, so it must stay
	// fresh across mode transitions or the first drag after returning to
	// Normal would jump the selection.
	lastPointer geom.Point
}

// New creates an editor over the given scene. Pass schematic.NewScene() for
// an empty sheet or schematic.NewSampleScene() for the demo seed.
func New(scene *schematic.Scene) *Editor {
	return &Editor{
		scene:     scene,
		selection: schematic.NewSelection(),
	}
}

// Scene returns the scene the editor mutates.
func (e *Editor) Scene() *schematic.Scene { return e.scene }

// Selection returns the live selection set.
func (e *Editor) Selection() *schematic.Selection { return e.selection }

// Mode returns the current interaction mode.
func (e *Editor) Mode() Mode { return e.mode }

// SelectionBounds returns the smallest rect covering every selected object,
// for zoom-to-selection and similar camera queries. Modules contribute
// their body rect, wires their hit footprint. An empty selection yields an
// empty rect.
func (e *Editor) SelectionBounds() geom.Rect {
	var bounds geom.Rect
	for _, o := range e.selection.Items() {
		switch o := o.(type) {
		case *schematic.Module:
			bounds = bounds.Union(o.Rect())
		case *schematic.Wire:
			bounds = bounds.Union(o.Bounds())
		}
	}
	return bounds
}

// HandleEvent runs one input event through the transition table. Events
// with no entry for the current mode are no-ops, never errors.
func (e *Editor) HandleEvent(ev Event) {
	// Escape abandons the in-progress object from any mode. Committed
	// points and objects stay in the scene; there is no rollback.
	if kd, ok := ev.(KeyDown); ok && kd.Key == KeyEscape {
		e.active = nil
		e.mode = ModeNormal
		return
	}

	switch e.mode {
	case ModeNormal:
		e.handleNormal(ev)
	case ModeDrawWire:
		e.handleDrawWire(ev)
	case ModeDrawModule:
		e.handleDrawModule(ev)
	}

	// Record the pointer after dispatch so the Normal-mode drag above
	// still saw the previous position for its delta.
	if p, ok := pointerPos(ev); ok {
		e.lastPointer = p
	}
}

// pointerPos extracts the position from any pointer-bearing event.
func pointerPos(ev Event) (geom.Point, bool) {
	switch ev := ev.(type) {
	case PointerDown:
		return ev.Pos, true
	case PointerMove:
		return ev.Pos, true
	case PointerUp:
		return ev.Pos, true
	case DoubleClick:
		return ev.Pos, true
	}
	return geom.Point{}, false
}

func (e *Editor) handleNormal(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		e.pressSelect(ev.Pos, ev.Mods)

	case PointerMove:
		if ev.ButtonsHeld {
			dx := ev.Pos.X - e.lastPointer.X
			dy := ev.Pos.Y - e.lastPointer.Y
			for _, o := range e.selection.Items() {
				o.MoveBy(dx, dy)
			}
		}

	case KeyDown:
		switch ev.Key {
		case KeyW:
			e.active = nil
			e.mode = ModeDrawWire
		case KeyM:
			e.active = nil
			e.mode = ModeDrawModule
		case KeyBackspace:
			e.deleteSelected()
		}
	}
}

// pressSelect implements the Normal-mode press rule: every object is
// scanned in paint order with no early exit, so overlapping objects under
// one press all become selected. A hit adds (never toggles off); a miss
// deselects only when no modifier is held.
func (e *Editor) pressSelect(p geom.Point, mods Modifiers) {
	keep := mods.Has(ModShift) || mods.Has(ModControl)
	for _, o := range e.scene.Objects() {
		if o.HitTest(p) {
			e.selection.Add(o)
		} else if o.Selected() && !keep {
			e.selection.Remove(o)
		}
	}
}

func (e *Editor) deleteSelected() {
	for _, o := range e.selection.Items() {
		e.scene.Remove(o)
		e.selection.Remove(o)
	}
}

func (e *Editor) handleDrawWire(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		if e.active == nil {
			// Seed with two copies of the click point: a committed anchor
			// and the rubber-banded tail the next moves will replace.
			w := schematic.NewWire()
			w.AddPoint(ev.Pos)
			w.AddPoint(ev.Pos)
			e.scene.Append(w)
			e.active = w
			return
		}
		// Commit the rubber-banded point and start the next one.
		e.active.(*schematic.Wire).AddPoint(ev.Pos)

	case PointerMove:
		if e.active == nil {
			return
		}
		w := e.active.(*schematic.Wire)
		w.RemovePoint(-1)
		w.AddPoint(ev.Pos)

	case DoubleClick:
		if e.active != nil {
			// Drop the trailing rubber-banded point so the finished wire
			// does not carry a spurious vertex under the double-click.
			e.active.(*schematic.Wire).RemovePoint(-1)
		}
		e.active = nil
		e.mode = ModeNormal
	}
}

func (e *Editor) handleDrawModule(ev Event) {
	switch ev := ev.(type) {
	case PointerDown:
		if e.active == nil {
			m := schematic.NewModule(ev.Pos, geom.Point{})
			e.scene.Append(m)
			e.active = m
		}

	case PointerMove:
		if e.active == nil {
			return
		}
		m := e.active.(*schematic.Module)
		m.SetSize(ev.Pos.Sub(m.Position()))

	case PointerUp:
		e.active = nil
		e.mode = ModeNormal
	}
}
