package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jsoldo/chitter/internal/domain"
)

type ConversationRepo struct {
	pool *pgxpool.Pool
}

func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{pool: pool}
}

func (r *ConversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	return r.scanConversation(ctx, `
		SELECT id, pair_key, user1_id, user2_id, latest_message_id, user1_unread, user2_unread, created_at, updated_at
		FROM conversations WHERE id = $1`, id)
}

func (r *ConversationRepo) GetByPairKey(ctx context.Context, key string) (*domain.Conversation, error) {
	return r.scanConversation(ctx, `
		SELECT id, pair_key, user1_id, user2_id, latest_message_id, user1_unread, user2_unread, created_at, updated_at
		FROM conversations WHERE pair_key = $1`, key)
}

// ListForUser resolves each row to the caller's point of view in SQL: the
// interlocutor columns pick "the other side" and unread picks the caller's
// own flag, so the raw user1/user2 split never leaves the store layer.
func (r *ConversationRepo) ListForUser(ctx context.Context, userID uuid.UUID, interlocutorIDs []uuid.UUID, before *uuid.UUID, limit int) ([]domain.ConversationView, error) {
	query := `
		SELECT c.id, c.pair_key,
			CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END AS interlocutor_id,
			CASE WHEN c.user1_id = $1 THEN u2.username ELSE u1.username END AS interlocutor_username,
			CASE WHEN c.user1_id = $1 THEN c.user1_unread ELSE c.user2_unread END AS unread,
			m.id, m.sender_id, m.recipient_id, m.text, m.is_read, m.is_deleted, m.created_at, m.updated_at
		FROM conversations c
		JOIN users u1 ON c.user1_id = u1.id
		JOIN users u2 ON c.user2_id = u2.id
		LEFT JOIN messages m ON c.latest_message_id = m.id
		WHERE (c.user1_id = $1 OR c.user2_id = $1)`
	args := []any{userID}

	if len(interlocutorIDs) > 0 {
		args = append(args, interlocutorIDs)
		query += fmt.Sprintf(" AND (CASE WHEN c.user1_id = $1 THEN c.user2_id ELSE c.user1_id END) = ANY($%d)", len(args))
	}

	if before != nil {
		args = append(args, *before)
		query += fmt.Sprintf(" AND (c.updated_at, c.id) < (SELECT updated_at, id FROM conversations WHERE id = $%d)", len(args))
	}

	query += fmt.Sprintf(" ORDER BY c.updated_at DESC, c.id DESC LIMIT %d", limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []domain.ConversationView
	for rows.Next() {
		var (
			conv       domain.ConversationView
			mID        *uuid.UUID
			mSender    *uuid.UUID
			mRecipient *uuid.UUID
			mText      *string
			mIsRead    *bool
			mIsDeleted *bool
			mCreatedAt *time.Time
			mUpdatedAt *time.Time
		)
		if err := rows.Scan(
			&conv.ID, &conv.PairKey, &conv.InterlocutorID, &conv.InterlocutorUsername, &conv.Unread,
			&mID, &mSender, &mRecipient, &mText, &mIsRead, &mIsDeleted, &mCreatedAt, &mUpdatedAt,
		); err != nil {
			return nil, err
		}
		if mID != nil {
			conv.LatestMessage = &domain.Message{
				ID:          *mID,
				SenderID:    *mSender,
				RecipientID: *mRecipient,
				Text:        mText,
				IsRead:      *mIsRead,
				IsDeleted:   *mIsDeleted,
				CreatedAt:   *mCreatedAt,
				UpdatedAt:   *mUpdatedAt,
			}
		}
		convs = append(convs, conv)
	}
	return convs, rows.Err()
}

func (r *ConversationRepo) scanConversation(ctx context.Context, query string, arg any) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.PairKey, &c.User1ID, &c.User2ID, &c.LatestMessageID,
		&c.User1Unread, &c.User2Unread, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
