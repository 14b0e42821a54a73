// Package session hosts the collaborative editing layer: each open sheet is
// a room owning one authoritative editor, and every connected frontend
// streams normalized input events in and receives render and panel
// snapshots back.
package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
)

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // sheetID -> room
	register   chan *Client
	unregister chan *Client
	quit       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.quit:
			h.closeAll()
			return
		}
	}
}

// Stop shuts the hub down, disconnecting every client.
func (h *Hub) Stop() {
	close(h.quit)
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.SheetID]
	if !ok {
		room = NewRoom(client.SheetID)
		h.rooms[client.SheetID] = room
	}
	room.clients[client.ClientID] = client
	h.mu.Unlock()

	// The joining client needs its identity, the sheet as it stands, and
	// who else is here.
	welcomePayload, _ := json.Marshal(WelcomePayload{
		ClientID: client.ClientID,
		SheetID:  client.SheetID,
	})
	client.Send(&Message{Type: TypeWelcome, Payload: welcomePayload})

	for _, msg := range room.StateMessages() {
		client.Send(msg)
	}
	if stateMsg := room.presence.StateMessage(); stateMsg != nil {
		client.Send(stateMsg)
	}

	joinPayload, _ := json.Marshal(PresenceJoinPayload{
		UserID:      client.UserID,
		DisplayName: client.DisplayName,
	})
	h.broadcastToRoom(client.SheetID, &Message{
		Type:    TypePresenceJoin,
		UserID:  client.UserID,
		Payload: joinPayload,
	}, client.ClientID)

	slog.Info("client joined", "user", client.UserID, "sheet", client.SheetID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.SheetID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	close(client.outbox)
	room.presence.Drop(client.UserID)

	if len(room.clients) == 0 {
		delete(h.rooms, client.SheetID)
	}
	h.mu.Unlock()

	leavePayload, _ := json.Marshal(PresenceLeavePayload{
		UserID: client.UserID,
	})
	h.broadcastToRoom(client.SheetID, &Message{
		Type:    TypePresenceLeave,
		UserID:  client.UserID,
		Payload: leavePayload,
	}, "")

	slog.Info("client left", "user", client.UserID, "sheet", client.SheetID)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range h.rooms {
		for _, c := range room.clients {
			close(c.outbox)
			c.conn.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
	h.rooms = make(map[string]*Room)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch {
	case isInputType(msg.Type):
		h.handleInput(sender, msg)
	case msg.Type == TypePanelSetField:
		h.handleSetField(sender, msg)
	case msg.Type == TypePresenceUpdate:
		h.handlePresenceUpdate(sender, msg)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
	}
}

func (h *Hub) handleInput(sender *Client, msg *Message) {
	room := h.roomFor(sender.SheetID)
	if room == nil {
		return
	}

	out, err := room.ApplyInput(msg)
	if err != nil {
		slog.Warn("rejected input", "error", err, "user", sender.UserID)
		h.sendError(sender, err.Error())
		return
	}

	// Everyone sees the new state, the sender included.
	for _, m := range out {
		h.broadcastToRoom(sender.SheetID, m, "")
	}
}

func (h *Hub) handleSetField(sender *Client, msg *Message) {
	room := h.roomFor(sender.SheetID)
	if room == nil {
		return
	}

	out, err := room.ApplySetField(msg)
	if err != nil {
		slog.Warn("rejected field edit", "error", err, "user", sender.UserID)
		h.sendError(sender, err.Error())
		return
	}

	for _, m := range out {
		h.broadcastToRoom(sender.SheetID, m, "")
	}
}

func (h *Hub) handlePresenceUpdate(sender *Client, msg *Message) {
	var presence PresencePayload
	if err := json.Unmarshal(msg.Payload, &presence); err != nil {
		slog.Warn("invalid presence payload", "error", err)
		return
	}

	presence.DisplayName = sender.DisplayName

	room := h.roomFor(sender.SheetID)
	if room == nil {
		return
	}

	room.presence.Set(sender.UserID, presence)

	outPayload, _ := json.Marshal(presence)
	h.broadcastToRoom(sender.SheetID, &Message{
		Type:    TypePresenceUpdate,
		UserID:  sender.UserID,
		Payload: outPayload,
	}, sender.ClientID)
}

func (h *Hub) roomFor(sheetID string) *Room {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rooms[sheetID]
}

func (h *Hub) sendError(c *Client, reason string) {
	payload, _ := json.Marshal(ErrorPayload{Reason: reason})
	c.Send(&Message{Type: TypeError, Payload: payload})
}

func (h *Hub) broadcastToRoom(sheetID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[sheetID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
