package session

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPresenceTableSetDropSnapshot(t *testing.T) {
	pt := newPresenceTable()

	ada := PresencePayload{
		Cursor:        &CursorPos{X: 120, Y: 80},
		Tool:          "wire",
		HighlightedID: []string{"mod_a"},
		DisplayName:   "Ada",
	}
	pt.Set("user_ada", ada)
	pt.Set("user_ada", ada) // replace, not duplicate
	pt.Set("user_bob", PresencePayload{Tool: "select", DisplayName: "Bob"})

	snap := pt.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot has %d entries, want 2", len(snap))
	}
	if diff := cmp.Diff(ada, snap["user_ada"]); diff != "" {
		t.Errorf("stored presence (-want +got):\n%s", diff)
	}

	pt.Drop("user_bob")
	if _, ok := pt.Snapshot()["user_bob"]; ok {
		t.Error("dropped collaborator still present in snapshot")
	}
}

func TestPresenceStateMessage(t *testing.T) {
	pt := newPresenceTable()
	pt.Set("user_ada", PresencePayload{
		Tool:          "module",
		HighlightedID: []string{"wire_1", "wire_2"},
	})

	msg := pt.StateMessage()
	if msg == nil || msg.Type != TypePresenceState {
		t.Fatalf("state message = %+v, want type %q", msg, TypePresenceState)
	}

	var state PresenceStatePayload
	if err := json.Unmarshal(msg.Payload, &state); err != nil {
		t.Fatalf("unmarshal state payload: %v", err)
	}
	got := state.Presences["user_ada"]
	if got.Tool != "module" || len(got.HighlightedID) != 2 {
		t.Errorf("round-tripped presence = %+v", got)
	}
}
