package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"
)

const (
	// A full render snapshot follows every applied input event, so the
	// outbox is sized for pointer-move bursts, not steady-state chatter.
	outboxSize = 256

	// inboundLimit bounds a single frame. Input events and panel edits
	// are tiny; anything near the limit is a misbehaving client.
	inboundLimit = 64 << 10

	sendTimeout   = 10 * time.Second
	keepAliveBeat = 30 * time.Second
)

// Client is one websocket connection to a sheet. Inbound frames are
// decoded and handed to the hub; outbound messages queue on the outbox and
// are marshalled by the write pump, keeping JSON work off the broadcast
// path.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	outbox chan *Message

	UserID      string
	DisplayName string
	SheetID     string
	ClientID    string
}

func NewClient(hub *Hub, conn *websocket.Conn, userID, displayName, sheetID, clientID string) *Client {
	return &Client{
		hub:         hub,
		conn:        conn,
		outbox:      make(chan *Message, outboxSize),
		UserID:      userID,
		DisplayName: displayName,
		SheetID:     sheetID,
		ClientID:    clientID,
	}
}

// Send queues a message without blocking. When the outbox is full the
// message is dropped: a slow reader misses intermediate render frames and
// catches up on the next one, rather than stalling the room.
func (c *Client) Send(msg *Message) {
	select {
	case c.outbox <- msg:
	default:
		slog.Warn("client outbox full, dropping frame",
			"user", c.UserID, "type", msg.Type)
	}
}

// ReadPump decodes inbound frames until the connection drops, stamping
// each message with the sender's identity so downstream code never trusts
// client-supplied routing fields.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(inboundLimit)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway {
				slog.Debug("websocket read ended", "error", err, "user", c.UserID)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("undecodable frame", "error", err, "user", c.UserID)
			continue
		}

		msg.UserID = c.UserID
		msg.ClientID = c.ClientID
		msg.SheetID = c.SheetID

		c.hub.handleMessage(c, &msg)
	}
}

// WritePump drains the outbox onto the wire and keeps the connection alive
// with periodic pings. It exits when the outbox closes or a write fails.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(keepAliveBeat)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case msg, ok := <-c.outbox:
			if !ok {
				return
			}
			if err := c.write(ctx, msg); err != nil {
				slog.Debug("websocket write ended", "error", err, "user", c.UserID)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, sendTimeout)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) write(ctx context.Context, msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		// An unmarshallable message is a programming error; skip it
		// rather than killing the connection.
		slog.Error("marshal outbound message", "error", err, "type", msg.Type)
		return nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
