package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/domain"
	"github.com/jsoldo/chitter/internal/pagination"
	"github.com/jsoldo/chitter/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UserListResponse struct {
	Users   []domain.UserView `json:"users"`
	HasNext bool              `json:"has_next"`
}

// Search lists users whose username contains the query, username ascending.
// A blank query short-circuits to an empty page without touching the store.
// With no session user every IsFollowing stays nil ("unknown"), never false.
func (s *UserService) Search(ctx context.Context, take int, query string, sessionUserID, cursor *uuid.UUID) (*UserListResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &UserListResponse{Users: []domain.UserView{}, HasNext: false}, nil
	}

	before, err := s.resolveCursor(ctx, cursor)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.Search(ctx, query, sessionUserID, before, pagination.Window(take))
	if err != nil {
		return nil, err
	}

	page, hasNext := pagination.Trim(users, take)
	return &UserListResponse{Users: page, HasNext: hasNext}, nil
}

// GetByUsername looks up a profile.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) resolveCursor(ctx context.Context, cursor *uuid.UUID) (*uuid.UUID, error) {
	if cursor == nil {
		return nil, nil
	}
	user, err := s.userRepo.GetByID(ctx, *cursor)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return cursor, nil
}
