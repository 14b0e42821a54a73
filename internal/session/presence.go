package session

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// presenceTable tracks what each collaborator on a sheet is currently
// doing: cursor position, the tool they have armed, and the objects they
// are highlighting. Entries are keyed by user ID, so a reconnect replaces
// the stale entry instead of duplicating it.
type presenceTable struct {
	mu      sync.RWMutex
	entries map[string]PresencePayload
}

func newPresenceTable() *presenceTable {
	return &presenceTable{entries: make(map[string]PresencePayload)}
}

// Set replaces a collaborator's presence wholesale. Partial updates are
// the frontend's job; the table only stores the latest full report.
func (t *presenceTable) Set(userID string, p PresencePayload) {
	t.mu.Lock()
	t.entries[userID] = p
	t.mu.Unlock()
}

// Drop forgets a collaborator, normally on disconnect.
func (t *presenceTable) Drop(userID string) {
	t.mu.Lock()
	delete(t.entries, userID)
	t.mu.Unlock()
}

// Snapshot copies the table for marshalling.
func (t *presenceTable) Snapshot() map[string]PresencePayload {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]PresencePayload, len(t.entries))
	for id, p := range t.entries {
		out[id] = p
	}
	return out
}

// StateMessage packs the whole table into one presence.state message for a
// joining client. Returns nil if the snapshot cannot be marshalled.
func (t *presenceTable) StateMessage() *Message {
	payload, err := json.Marshal(PresenceStatePayload{Presences: t.Snapshot()})
	if err != nil {
		slog.Error("marshal presence state", "error", err)
		return nil
	}
	return &Message{Type: TypePresenceState, Payload: payload}
}
