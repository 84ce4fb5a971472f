package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserView is a search result annotated with the session user's follow
// relationship. IsFollowing stays nil for anonymous searches ("unknown"),
// which is distinct from false ("known not following").
type UserView struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	IsFollowing *bool     `json:"is_following"`
}
