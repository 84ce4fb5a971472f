package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FollowRepo struct {
	pool *pgxpool.Pool
}

func NewFollowRepo(pool *pgxpool.Pool) *FollowRepo {
	return &FollowRepo{pool: pool}
}

// Create is duplicate-tolerant: following someone twice is a no-op, not an
// error.
func (r *FollowRepo) Create(ctx context.Context, followerID, followedID uuid.UUID) error {
	query := `
		INSERT INTO follows (id, follower_id, followed_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (follower_id, followed_id) DO NOTHING`
	_, err := r.pool.Exec(ctx, query, uuid.New(), followerID, followedID, time.Now())
	return err
}

func (r *FollowRepo) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`
	_, err := r.pool.Exec(ctx, query, followerID, followedID)
	return err
}

func (r *FollowRepo) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`
	err := r.pool.QueryRow(ctx, query, followerID, followedID).Scan(&exists)
	return exists, err
}
