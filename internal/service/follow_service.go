package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/repository"
)

var ErrCannotFollowSelf = errors.New("cannot follow yourself")

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow adds a directed edge. Following twice is a no-op.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uuid.UUID) error {
	if followerID == targetID {
		return ErrCannotFollowSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	return s.followRepo.Create(ctx, followerID, targetID)
}

// Unfollow removes the edge if present.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error {
	return s.followRepo.Delete(ctx, followerID, targetID)
}

// IsFollowing reports whether follower follows target.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, targetID)
}
