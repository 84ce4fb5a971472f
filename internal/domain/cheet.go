package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cheet struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Text       string    `json:"text"`
	HasReplies bool      `json:"has_replies"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	// Joined fields
	Username string `json:"username,omitempty"`
}

type Reply struct {
	ID        uuid.UUID `json:"id"`
	CheetID   uuid.UUID `json:"cheet_id"`
	UserID    uuid.UUID `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Joined fields
	Username string `json:"username,omitempty"`
}
