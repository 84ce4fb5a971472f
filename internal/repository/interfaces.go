package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/domain"
)

// CheetFilter scopes a cheet listing. PageUserID wins over SessionUserID;
// with neither set the listing is global.
type CheetFilter struct {
	// PageUserID restricts to cheets authored by that user (profile view).
	PageUserID *uuid.UUID
	// SessionUserID restricts to cheets authored by the session user or by
	// anyone they follow (home feed).
	SessionUserID *uuid.UUID
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// Search lists users whose username contains substring, username
	// ascending. With a session user each row carries a concrete
	// IsFollowing; anonymously it stays nil.
	Search(ctx context.Context, substring string, sessionUserID *uuid.UUID, after *uuid.UUID, limit int) ([]domain.UserView, error)
}

type CheetRepository interface {
	Create(ctx context.Context, cheet *domain.Cheet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cheet, error)
	List(ctx context.Context, filter CheetFilter, before *uuid.UUID, limit int) ([]domain.Cheet, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReplyRepository interface {
	// Create inserts the reply and flips the parent cheet's has_replies flag
	// in the same transaction.
	Create(ctx context.Context, reply *domain.Reply) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error)
	ListByCheet(ctx context.Context, cheetID uuid.UUID, before *uuid.UUID, limit int) ([]domain.Reply, error)
}

type MessageRepository interface {
	// Send inserts the message and upserts the pair's conversation row
	// (latest-message pointer, recipient-side unread flag) in the same
	// transaction.
	Send(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	// ListBetween returns messages in either direction between exactly the
	// two users, newest first.
	ListBetween(ctx context.Context, userID, interlocutorID uuid.UUID, before *uuid.UUID, limit int) ([]domain.Message, error)
	// MarkRead marks every unread message from interlocutor to user as read
	// and clears the user's sided unread flag on the conversation, in one
	// transaction. Returns the number of messages affected.
	MarkRead(ctx context.Context, userID, interlocutorID uuid.UUID) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type ConversationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	GetByPairKey(ctx context.Context, key string) (*domain.Conversation, error)
	// ListForUser returns the user's conversations as resolved views, most
	// recently active first, optionally restricted to the given
	// interlocutors.
	ListForUser(ctx context.Context, userID uuid.UUID, interlocutorIDs []uuid.UUID, before *uuid.UUID, limit int) ([]domain.ConversationView, error)
}

type FollowRepository interface {
	Create(ctx context.Context, followerID, followedID uuid.UUID) error
	Delete(ctx context.Context, followerID, followedID uuid.UUID) error
	Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
}
