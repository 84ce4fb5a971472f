package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypeMessageNew     = "message.new"
	EventTypeMessageRead    = "message.read"
	EventTypeMessageDeleted = "message.deleted"
	EventTypePresence       = "presence"
	EventTypePong           = "pong"
	EventTypeError          = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

// --- Server → Client payloads ---

type MessagePayload struct {
	domain.Message
}

type MessagesReadPayload struct {
	ReaderID uuid.UUID `json:"reader_id"`
	Count    int64     `json:"count"`
}

type MessageDeletedPayload struct {
	ID       uuid.UUID `json:"id"`
	SenderID uuid.UUID `json:"sender_id"`
}

type PresencePayload struct {
	UserID uuid.UUID `json:"user_id"`
	Status string    `json:"status"` // "online" | "offline"
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
