package editor

import "github.com/gridwire/gridwire/backend-go/internal/geom"

// Modifiers is the set of modifier keys held during a pointer event. It is
// carried in the event payload so the state machine never consults ambient
// keyboard state.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
)

// Has reports whether m includes mod.
func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// Key is a logical key code delivered by the windowing collaborator.
type Key int

const (
	KeyW Key = iota
	KeyM
	KeyBackspace
	KeyEscape
)

// String returns the wire-format name of the key.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "w"
	case KeyM:
		return "m"
	case KeyBackspace:
		return "backspace"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// ParseKey maps a wire-format key name to a Key. The second result is false
// for keys the editor does not handle.
func ParseKey(name string) (Key, bool) {
	switch name {
	case "w":
		return KeyW, true
	case "m":
		return KeyM, true
	case "backspace":
		return KeyBackspace, true
	case "escape":
		return KeyEscape, true
	default:
		return 0, false
	}
}

// Event is a normalized input event. The variant set is closed; the editor
// dispatches on the concrete type.
type Event interface {
	isEvent()
}

// PointerDown is a press at a canvas position.
type PointerDown struct {
	Pos  geom.Point
	Mods Modifiers
}

// PointerMove is pointer motion. ButtonsHeld is true while a button stays
// pressed (a drag).
type PointerMove struct {
	Pos         geom.Point
	ButtonsHeld bool
}

// PointerUp is a release.
type PointerUp struct {
	Pos geom.Point
}

// DoubleClick is a double press.
type DoubleClick struct {
	Pos geom.Point
}

// KeyDown is a logical key press.
type KeyDown struct {
	Key Key
}

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent()   {}
func (DoubleClick) isEvent() {}
func (KeyDown) isEvent()     {}
