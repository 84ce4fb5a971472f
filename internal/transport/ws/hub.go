package ws

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Hub tracks all connected clients by user id. Delivery here is always
// user-directed: message events go straight to the two people involved.
type Hub struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	direct     chan *directMsg

	log *zap.Logger
}

type directMsg struct {
	userID uuid.UUID
	data   []byte
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		direct:     make(chan *directMsg, 256),
		log:        log,
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.userID] = client
			h.log.Info("ws client connected", zap.String("user_id", client.userID.String()), zap.Int("total", len(h.clients)))

			h.broadcastPresence(client.userID, "online")

		case client := <-h.unregister:
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
				close(client.done)
				h.log.Info("ws client disconnected", zap.String("user_id", client.userID.String()), zap.Int("total", len(h.clients)))

				h.broadcastPresence(client.userID, "offline")
			}

		case msg := <-h.direct:
			client, ok := h.clients[msg.userID]
			if !ok {
				continue
			}
			select {
			case client.send <- msg.data:
			default:
				// Client buffer full - disconnect
				delete(h.clients, client.userID)
				close(client.send)
				close(client.done)
			}
		}
	}
}

// BroadcastToUser sends an event to one user's connection, if any.
func (h *Hub) BroadcastToUser(userID uuid.UUID, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("ws marshal", zap.Error(err))
		return
	}
	h.direct <- &directMsg{userID: userID, data: data}
}

// broadcastPresence sends online/offline to all connected clients.
func (h *Hub) broadcastPresence(userID uuid.UUID, status string) {
	evt, err := NewEvent(EventTypePresence, PresencePayload{
		UserID: userID,
		Status: status,
	})
	if err != nil {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	for _, client := range h.clients {
		if client.userID == userID {
			continue
		}
		select {
		case client.send <- data:
		default:
		}
	}
}
