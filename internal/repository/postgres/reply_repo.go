package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jsoldo/chitter/internal/domain"
)

type ReplyRepo struct {
	pool *pgxpool.Pool
}

func NewReplyRepo(pool *pgxpool.Pool) *ReplyRepo {
	return &ReplyRepo{pool: pool}
}

// Create inserts the reply and durably flips the parent cheet's has_replies
// flag. Both land or neither does: a cheet must never gain a reply while
// still reporting has_replies = false.
func (r *ReplyRepo) Create(ctx context.Context, reply *domain.Reply) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO replies (id, cheet_id, user_id, text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, query,
		reply.ID, reply.CheetID, reply.UserID, reply.Text, reply.CreatedAt, reply.UpdatedAt,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE cheets SET has_replies = TRUE WHERE id = $1`, reply.CheetID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *ReplyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error) {
	query := `
		SELECT r.id, r.cheet_id, r.user_id, r.text, r.created_at, r.updated_at, u.username
		FROM replies r
		JOIN users u ON r.user_id = u.id
		WHERE r.id = $1`
	var rep domain.Reply
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rep.ID, &rep.CheetID, &rep.UserID, &rep.Text, &rep.CreatedAt, &rep.UpdatedAt, &rep.Username,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// ListByCheet returns replies newest first; callers wanting a chronological
// thread reverse client-side.
func (r *ReplyRepo) ListByCheet(ctx context.Context, cheetID uuid.UUID, before *uuid.UUID, limit int) ([]domain.Reply, error) {
	var query string
	var args []any

	if before != nil {
		query = fmt.Sprintf(`
			SELECT r.id, r.cheet_id, r.user_id, r.text, r.created_at, r.updated_at, u.username
			FROM replies r
			JOIN users u ON r.user_id = u.id
			WHERE r.cheet_id = $1
				AND (r.created_at, r.id) < (SELECT created_at, id FROM replies WHERE id = $2)
			ORDER BY r.created_at DESC, r.id DESC
			LIMIT %d`, limit)
		args = []any{cheetID, *before}
	} else {
		query = fmt.Sprintf(`
			SELECT r.id, r.cheet_id, r.user_id, r.text, r.created_at, r.updated_at, u.username
			FROM replies r
			JOIN users u ON r.user_id = u.id
			WHERE r.cheet_id = $1
			ORDER BY r.created_at DESC, r.id DESC
			LIMIT %d`, limit)
		args = []any{cheetID}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []domain.Reply
	for rows.Next() {
		var rep domain.Reply
		if err := rows.Scan(&rep.ID, &rep.CheetID, &rep.UserID, &rep.Text, &rep.CreatedAt, &rep.UpdatedAt, &rep.Username); err != nil {
			return nil, err
		}
		replies = append(replies, rep)
	}
	return replies, rows.Err()
}
