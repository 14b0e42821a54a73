package session

import (
	"encoding/json"

	"github.com/gridwire/gridwire/backend-go/internal/editor"
)

// Message is the websocket envelope exchanged with canvas frontends.
type Message struct {
	Type     string          `json:"type"`
	SheetID  string          `json:"sheetId,omitempty"`
	ClientID string          `json:"clientId,omitempty"`
	UserID   string          `json:"userId,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

const (
	// Connection
	TypeWelcome = "welcome"
	TypeError   = "error"

	// Input events (frontend → room editor)
	TypeInputPointerDown = "input.pointerDown"
	TypeInputPointerMove = "input.pointerMove"
	TypeInputPointerUp   = "input.pointerUp"
	TypeInputDoubleClick = "input.doubleClick"
	TypeInputKeyDown     = "input.keyDown"

	// Editor state (room → every client)
	TypeSceneRender = "scene.render"
	TypePanelState  = "panel.state"

	// Panel edits (frontend → room editor)
	TypePanelSetField = "panel.setField"

	// Presence
	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
)

// InputPayload carries one normalized input event. Which fields are
// meaningful depends on the message type: pointer events use X/Y plus the
// modifier or button flags, key events use Key.
type InputPayload struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Shift       bool    `json:"shift,omitempty"`
	Ctrl        bool    `json:"ctrl,omitempty"`
	ButtonsHeld bool    `json:"buttonsHeld,omitempty"`
	Key         string  `json:"key,omitempty"`
}

// RenderPayload is the full scene snapshot broadcast after every applied
// event, in painter's order.
type RenderPayload struct {
	Objects []editor.RenderObject `json:"objects"`
}

// PanelStatePayload is the properties-panel state for the room's selection.
// Fields is empty unless exactly one object is selected.
type PanelStatePayload struct {
	Fields map[string]string `json:"fields"`
}

// SetFieldPayload is a properties-panel edit.
type SetFieldPayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// WelcomePayload tells a joining client who it is.
type WelcomePayload struct {
	ClientID string `json:"clientId"`
	SheetID  string `json:"sheetId"`
}

// ErrorPayload reports a rejected message.
type ErrorPayload struct {
	Reason string `json:"reason"`
}

// PresencePayload is a collaborator's live activity on the sheet: cursor
// position, the tool they have armed (e.g. "select", "wire", "module"),
// and the IDs of objects they are highlighting. The frontend reports it
// whole; the server only stamps the display name.
type PresencePayload struct {
	Cursor        *CursorPos `json:"cursor,omitempty"`
	Tool          string     `json:"tool,omitempty"`
	HighlightedID []string   `json:"highlightedIds,omitempty"`
	DisplayName   string     `json:"displayName,omitempty"`
}

// CursorPos is a collaborator cursor position in canvas space.
type CursorPos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PresenceStatePayload is the full presence map sent to a joining client.
type PresenceStatePayload struct {
	Presences map[string]PresencePayload `json:"presences"`
}

// PresenceJoinPayload announces a new collaborator.
type PresenceJoinPayload struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// PresenceLeavePayload announces a departing collaborator.
type PresenceLeavePayload struct {
	UserID string `json:"userId"`
}

// isInputType reports whether a message type is a normalized input event.
func isInputType(t string) bool {
	switch t {
	case TypeInputPointerDown, TypeInputPointerMove, TypeInputPointerUp,
		TypeInputDoubleClick, TypeInputKeyDown:
		return true
	default:
		return false
	}
}
