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

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, password_hash, created_at, updated_at FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, password_hash, created_at, updated_at FROM users WHERE username = $1", username)
}

// Search matches usernames case-insensitively. sessionUserID is passed as a
// nullable parameter so the is_following column is NULL for anonymous
// searches rather than a spurious false.
func (r *UserRepo) Search(ctx context.Context, substring string, sessionUserID *uuid.UUID, after *uuid.UUID, limit int) ([]domain.UserView, error) {
	var query string
	var args []any

	if after != nil {
		query = fmt.Sprintf(`
			SELECT u.id, u.username,
				CASE WHEN $2::uuid IS NULL THEN NULL
					ELSE EXISTS(SELECT 1 FROM follows f WHERE f.follower_id = $2 AND f.followed_id = u.id)
				END AS is_following
			FROM users u
			WHERE u.username ILIKE '%%' || $1 || '%%'
				AND u.username > (SELECT username FROM users WHERE id = $3)
			ORDER BY u.username ASC
			LIMIT %d`, limit)
		args = []any{substring, sessionUserID, *after}
	} else {
		query = fmt.Sprintf(`
			SELECT u.id, u.username,
				CASE WHEN $2::uuid IS NULL THEN NULL
					ELSE EXISTS(SELECT 1 FROM follows f WHERE f.follower_id = $2 AND f.followed_id = u.id)
				END AS is_following
			FROM users u
			WHERE u.username ILIKE '%%' || $1 || '%%'
			ORDER BY u.username ASC
			LIMIT %d`, limit)
		args = []any{substring, sessionUserID}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserView
	for rows.Next() {
		var u domain.UserView
		if err := rows.Scan(&u.ID, &u.Username, &u.IsFollowing); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
