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

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// Send inserts the message and upserts the pair's conversation row in one
// transaction. On first contact the row is created; afterwards only the
// latest-message pointer and the recipient's unread flag change. The OR-merge
// on the flags means the sender's own direction is never cleared by a send,
// and a self-message (both flags inserted false) touches neither.
func (r *MessageRepo) Send(ctx context.Context, msg *domain.Message) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO messages (id, sender_id, recipient_id, text, is_read, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.Exec(ctx, query,
		msg.ID, msg.SenderID, msg.RecipientID, msg.Text, msg.IsRead, msg.IsDeleted, msg.CreatedAt, msg.UpdatedAt,
	); err != nil {
		return err
	}

	u1, u2 := msg.SenderID, msg.RecipientID
	if !domain.IsFirst(u1, u2) {
		u1, u2 = u2, u1
	}

	var user1Unread, user2Unread bool
	if msg.SenderID != msg.RecipientID {
		if msg.RecipientID == u1 {
			user1Unread = true
		} else {
			user2Unread = true
		}
	}

	upsert := `
		INSERT INTO conversations (id, pair_key, user1_id, user2_id, latest_message_id, user1_unread, user2_unread, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (pair_key) DO UPDATE SET
			latest_message_id = EXCLUDED.latest_message_id,
			user1_unread = conversations.user1_unread OR EXCLUDED.user1_unread,
			user2_unread = conversations.user2_unread OR EXCLUDED.user2_unread,
			updated_at = EXCLUDED.updated_at`
	if _, err := tx.Exec(ctx, upsert,
		uuid.New(), domain.PairKey(msg.SenderID, msg.RecipientID), u1, u2,
		msg.ID, user1Unread, user2Unread, msg.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *MessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	query := `
		SELECT m.id, m.sender_id, m.recipient_id, m.text, m.is_read, m.is_deleted,
			m.created_at, m.updated_at, u.username
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE m.id = $1`
	var msg domain.Message
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID, &msg.SenderID, &msg.RecipientID, &msg.Text, &msg.IsRead, &msg.IsDeleted,
		&msg.CreatedAt, &msg.UpdatedAt, &msg.SenderUsername,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListBetween returns messages in either direction between exactly the two
// users, newest first. The pair condition also covers self-conversations.
func (r *MessageRepo) ListBetween(ctx context.Context, userID, interlocutorID uuid.UUID, before *uuid.UUID, limit int) ([]domain.Message, error) {
	var query string
	var args []any

	if before != nil {
		query = fmt.Sprintf(`
			SELECT m.id, m.sender_id, m.recipient_id, m.text, m.is_read, m.is_deleted,
				m.created_at, m.updated_at, u.username
			FROM messages m
			JOIN users u ON m.sender_id = u.id
			WHERE ((m.sender_id = $1 AND m.recipient_id = $2) OR (m.sender_id = $2 AND m.recipient_id = $1))
				AND (m.created_at, m.id) < (SELECT created_at, id FROM messages WHERE id = $3)
			ORDER BY m.created_at DESC, m.id DESC
			LIMIT %d`, limit)
		args = []any{userID, interlocutorID, *before}
	} else {
		query = fmt.Sprintf(`
			SELECT m.id, m.sender_id, m.recipient_id, m.text, m.is_read, m.is_deleted,
				m.created_at, m.updated_at, u.username
			FROM messages m
			JOIN users u ON m.sender_id = u.id
			WHERE ((m.sender_id = $1 AND m.recipient_id = $2) OR (m.sender_id = $2 AND m.recipient_id = $1))
			ORDER BY m.created_at DESC, m.id DESC
			LIMIT %d`, limit)
		args = []any{userID, interlocutorID}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID, &msg.SenderID, &msg.RecipientID, &msg.Text, &msg.IsRead, &msg.IsDeleted,
			&msg.CreatedAt, &msg.UpdatedAt, &msg.SenderUsername,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// MarkRead marks every unread message from interlocutor to user as read and
// clears the user's side of the conversation's unread split, atomically. The
// message flags and the conversation flag must not diverge.
func (r *MessageRepo) MarkRead(ctx context.Context, userID, interlocutorID uuid.UUID) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE messages SET is_read = TRUE, updated_at = $3
		WHERE recipient_id = $1 AND sender_id = $2 AND is_read = FALSE`,
		userID, interlocutorID, time.Now(),
	)
	if err != nil {
		return 0, err
	}

	// Which flag is "mine" depends on a fresh lexicographic comparison, never
	// on caller argument order.
	col := "user2_unread"
	if domain.IsFirst(userID, interlocutorID) {
		col = "user1_unread"
	}
	clearQuery := fmt.Sprintf(`UPDATE conversations SET %s = FALSE WHERE pair_key = $1`, col)
	if _, err := tx.Exec(ctx, clearQuery, domain.PairKey(userID, interlocutorID)); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SoftDelete nulls the stored text and flags the row; the message keeps its
// place in the thread.
func (r *MessageRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE messages SET text = NULL, is_deleted = TRUE, updated_at = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, time.Now())
	return err
}
