package domain

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Text        *string   `json:"text"`
	IsRead      bool      `json:"is_read"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Joined fields
	SenderUsername string `json:"sender_username,omitempty"`
}

// Redact blanks the text of a soft-deleted message regardless of what the
// store returned for it.
func (m *Message) Redact() {
	if m.IsDeleted {
		m.Text = nil
	}
}
