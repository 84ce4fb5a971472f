package domain

import (
	"time"

	"github.com/google/uuid"
)

// PairKeySeparator never appears in a UUID, so a key splits back into its two
// member ids unambiguously.
const PairKeySeparator = ":"

// PairKey returns the canonical key for an unordered user pair: the two ids
// sorted lexicographically and joined. PairKey(a, b) == PairKey(b, a).
func PairKey(a, b uuid.UUID) string {
	u1, u2 := a.String(), b.String()
	if u1 > u2 {
		u1, u2 = u2, u1
	}
	return u1 + PairKeySeparator + u2
}

// IsFirst reports whether viewer is the lexicographically-first member of the
// pair, i.e. whether viewer owns the "user1" side of the conversation row.
// Every call site that picks an unread flag goes through this one comparison.
func IsFirst(viewer, other uuid.UUID) bool {
	return viewer.String() < other.String()
}

// Conversation is the single row per unordered user pair. User1 is always the
// lexicographically-first member, so User1Unread tracks unread state for that
// user and User2Unread for the other; the flags are independent directions.
type Conversation struct {
	ID              uuid.UUID  `json:"id"`
	PairKey         string     `json:"pair_key"`
	User1ID         uuid.UUID  `json:"user1_id"`
	User2ID         uuid.UUID  `json:"user2_id"`
	LatestMessageID *uuid.UUID `json:"latest_message_id,omitempty"`
	User1Unread     bool       `json:"user1_unread"`
	User2Unread     bool       `json:"user2_unread"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UnreadFor resolves the sided flag for one viewer.
func (c *Conversation) UnreadFor(userID uuid.UUID) bool {
	if userID == c.User1ID {
		return c.User1Unread
	}
	return c.User2Unread
}

// ConversationView is what callers see: the user1/user2 split is resolved to
// "the other person" and "my unread flag" before leaving the core.
type ConversationView struct {
	ID                   uuid.UUID `json:"id"`
	PairKey              string    `json:"pair_key"`
	InterlocutorID       uuid.UUID `json:"interlocutor_id"`
	InterlocutorUsername string    `json:"interlocutor_username"`
	LatestMessage        *Message  `json:"latest_message,omitempty"`
	Unread               bool      `json:"unread"`
}
