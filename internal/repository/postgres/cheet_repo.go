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
	"github.com/jsoldo/chitter/internal/repository"
)

type CheetRepo struct {
	pool *pgxpool.Pool
}

func NewCheetRepo(pool *pgxpool.Pool) *CheetRepo {
	return &CheetRepo{pool: pool}
}

func (r *CheetRepo) Create(ctx context.Context, cheet *domain.Cheet) error {
	query := `
		INSERT INTO cheets (id, user_id, text, has_replies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		cheet.ID, cheet.UserID, cheet.Text, cheet.HasReplies, cheet.CreatedAt, cheet.UpdatedAt,
	)
	return err
}

func (r *CheetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cheet, error) {
	query := `
		SELECT c.id, c.user_id, c.text, c.has_replies, c.created_at, c.updated_at, u.username
		FROM cheets c
		JOIN users u ON c.user_id = u.id
		WHERE c.id = $1`
	var c domain.Cheet
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.Text, &c.HasReplies, &c.CreatedAt, &c.UpdatedAt, &c.Username,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns cheets newest first. Filter priority: profile page, then home
// feed (own cheets plus followed authors), then global.
func (r *CheetRepo) List(ctx context.Context, filter repository.CheetFilter, before *uuid.UUID, limit int) ([]domain.Cheet, error) {
	query := `
		SELECT c.id, c.user_id, c.text, c.has_replies, c.created_at, c.updated_at, u.username
		FROM cheets c
		JOIN users u ON c.user_id = u.id
		WHERE TRUE`
	var args []any

	switch {
	case filter.PageUserID != nil:
		args = append(args, *filter.PageUserID)
		query += fmt.Sprintf(" AND c.user_id = $%d", len(args))
	case filter.SessionUserID != nil:
		args = append(args, *filter.SessionUserID)
		query += fmt.Sprintf(` AND (c.user_id = $%d OR c.user_id IN (SELECT followed_id FROM follows WHERE follower_id = $%d))`, len(args), len(args))
	}

	if before != nil {
		args = append(args, *before)
		query += fmt.Sprintf(" AND (c.created_at, c.id) < (SELECT created_at, id FROM cheets WHERE id = $%d)", len(args))
	}

	query += fmt.Sprintf(" ORDER BY c.created_at DESC, c.id DESC LIMIT %d", limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cheets []domain.Cheet
	for rows.Next() {
		var c domain.Cheet
		if err := rows.Scan(&c.ID, &c.UserID, &c.Text, &c.HasReplies, &c.CreatedAt, &c.UpdatedAt, &c.Username); err != nil {
			return nil, err
		}
		cheets = append(cheets, c)
	}
	return cheets, rows.Err()
}

func (r *CheetRepo) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	query := `UPDATE cheets SET text = $1, updated_at = $2 WHERE id = $3`
	_, err := r.pool.Exec(ctx, query, text, time.Now(), id)
	return err
}

// Delete removes the cheet and its replies together.
func (r *CheetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM replies WHERE cheet_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM cheets WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
