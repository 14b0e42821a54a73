package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gridwire/gridwire/backend-go/internal/editor"
	"github.com/gridwire/gridwire/backend-go/internal/geom"
	"github.com/gridwire/gridwire/backend-go/internal/schematic"
)

// Room is one open sheet: the authoritative editor plus the clients watching
// it. The editor itself is single-threaded by contract, so the room applies
// one event to completion under its lock before admitting the next.
type Room struct {
	sheetID  string
	clients  map[string]*Client // clientID -> client
	presence *presenceTable

	mu sync.Mutex
	ed *editor.Editor
}

// NewRoom creates a room over the demonstration sheet.
func NewRoom(sheetID string) *Room {
	return &Room{
		sheetID:  sheetID,
		clients:  make(map[string]*Client),
		presence: newPresenceTable(),
		ed:       editor.New(schematic.NewSampleScene()),
	}
}

// ApplyInput decodes an input message, runs it through the editor, and
// returns the state messages to broadcast: the fresh render snapshot and
// the panel state.
func (r *Room) ApplyInput(msg *Message) ([]*Message, error) {
	var in InputPayload
	if err := json.Unmarshal(msg.Payload, &in); err != nil {
		return nil, fmt.Errorf("invalid input payload: %w", err)
	}

	ev, err := toEvent(msg.Type, in)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.ed.HandleEvent(ev)
	out := r.stateMessagesLocked()
	r.mu.Unlock()
	return out, nil
}

// ApplySetField applies a properties-panel edit and returns the resulting
// state messages.
func (r *Room) ApplySetField(msg *Message) ([]*Message, error) {
	var sf SetFieldPayload
	if err := json.Unmarshal(msg.Payload, &sf); err != nil {
		return nil, fmt.Errorf("invalid setField payload: %w", err)
	}

	r.mu.Lock()
	r.ed.SetField(sf.Name, sf.Value)
	out := r.stateMessagesLocked()
	r.mu.Unlock()
	return out, nil
}

// StateMessages returns the current render snapshot and panel state, for
// sending to a freshly joined client.
func (r *Room) StateMessages() []*Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateMessagesLocked()
}

func (r *Room) stateMessagesLocked() []*Message {
	renderPayload, _ := json.Marshal(RenderPayload{Objects: r.ed.Snapshot()})
	panelPayload, _ := json.Marshal(PanelStatePayload{Fields: r.ed.PanelFields()})
	return []*Message{
		{Type: TypeSceneRender, SheetID: r.sheetID, Payload: renderPayload},
		{Type: TypePanelState, SheetID: r.sheetID, Payload: panelPayload},
	}
}

// toEvent maps a wire message onto an editor event.
func toEvent(msgType string, in InputPayload) (editor.Event, error) {
	pos := geom.Point{X: in.X, Y: in.Y}

	switch msgType {
	case TypeInputPointerDown:
		var mods editor.Modifiers
		if in.Shift {
			mods |= editor.ModShift
		}
		if in.Ctrl {
			mods |= editor.ModControl
		}
		return editor.PointerDown{Pos: pos, Mods: mods}, nil

	case TypeInputPointerMove:
		return editor.PointerMove{Pos: pos, ButtonsHeld: in.ButtonsHeld}, nil

	case TypeInputPointerUp:
		return editor.PointerUp{Pos: pos}, nil

	case TypeInputDoubleClick:
		return editor.DoubleClick{Pos: pos}, nil

	case TypeInputKeyDown:
		key, ok := editor.ParseKey(in.Key)
		if !ok {
			return nil, fmt.Errorf("unhandled key %q", in.Key)
		}
		return editor.KeyDown{Key: key}, nil

	default:
		return nil, fmt.Errorf("not an input message: %s", msgType)
	}
}
