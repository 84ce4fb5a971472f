package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
	sendBufSize  = 256
)

// Client represents a single WebSocket connection.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID uuid.UUID
	log    *zap.Logger

	send chan []byte
	done chan struct{}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID, log *zap.Logger) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		log:    log,
		send:   make(chan []byte, sendBufSize),
		done:   make(chan struct{}),
	}
}

// ReadPump reads client events until the connection drops.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		var event Event
		err := wsjson.Read(context.Background(), c.conn, &event)
		if err != nil {
			if websocket.CloseStatus(err) == -1 {
				c.log.Debug("ws read", zap.String("user_id", c.userID.String()), zap.Error(err))
			}
			return
		}

		c.handleEvent(&event)
	}
}

// WritePump writes messages from the send channel to the WebSocket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case data, ok := <-c.send:
			if !ok {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Write(ctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				return
			}
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Ping(ctx)
			cancel()
			if err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *Client) handleEvent(event *Event) {
	switch event.Type {
	case EventTypePing:
		c.enqueue(&Event{Type: EventTypePong, Timestamp: time.Now().Unix()})
	default:
		evt, err := NewEvent(EventTypeError, ErrorPayload{
			Code:    "UNKNOWN_EVENT",
			Message: "Unknown event type: " + event.Type,
		})
		if err != nil {
			return
		}
		c.enqueue(evt)
	}
}

func (c *Client) enqueue(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
