package domain

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: follower sees followed's cheets in their feed.
type Follow struct {
	ID         uuid.UUID `json:"id"`
	FollowerID uuid.UUID `json:"follower_id"`
	FollowedID uuid.UUID `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
