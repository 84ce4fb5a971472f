package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/domain"
	"github.com/jsoldo/chitter/internal/pagination"
	"github.com/jsoldo/chitter/internal/repository"
)

type ReplyService struct {
	replyRepo repository.ReplyRepository
	cheetRepo repository.CheetRepository
}

func NewReplyService(replyRepo repository.ReplyRepository, cheetRepo repository.CheetRepository) *ReplyService {
	return &ReplyService{
		replyRepo: replyRepo,
		cheetRepo: cheetRepo,
	}
}

type ReplyListResponse struct {
	Replies []domain.Reply `json:"replies"`
	HasNext bool           `json:"has_next"`
}

// Create posts a reply under a cheet. The repository flips the parent's
// has_replies flag in the same transaction as the insert.
func (s *ReplyService) Create(ctx context.Context, userID, cheetID uuid.UUID, text string) (*domain.Reply, error) {
	cheet, err := s.cheetRepo.GetByID(ctx, cheetID)
	if err != nil {
		return nil, err
	}
	if cheet == nil {
		return nil, ErrCheetNotFound
	}

	now := time.Now()
	reply := &domain.Reply{
		ID:        uuid.New(),
		CheetID:   cheetID,
		UserID:    userID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("creating reply: %w", err)
	}

	return s.replyRepo.GetByID(ctx, reply.ID)
}

// Fetch returns one page of a cheet's replies, newest first.
func (s *ReplyService) Fetch(ctx context.Context, take int, cheetID uuid.UUID, cursor *uuid.UUID) (*ReplyListResponse, error) {
	cheet, err := s.cheetRepo.GetByID(ctx, cheetID)
	if err != nil {
		return nil, err
	}
	if cheet == nil {
		return nil, ErrCheetNotFound
	}

	before, err := s.resolveCursor(ctx, cursor)
	if err != nil {
		return nil, err
	}

	replies, err := s.replyRepo.ListByCheet(ctx, cheetID, before, pagination.Window(take))
	if err != nil {
		return nil, err
	}

	page, hasNext := pagination.Trim(replies, take)
	return &ReplyListResponse{Replies: page, HasNext: hasNext}, nil
}

func (s *ReplyService) resolveCursor(ctx context.Context, cursor *uuid.UUID) (*uuid.UUID, error) {
	if cursor == nil {
		return nil, nil
	}
	reply, err := s.replyRepo.GetByID(ctx, *cursor)
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, nil
	}
	return cursor, nil
}
