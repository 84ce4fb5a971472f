package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/domain"
	"github.com/jsoldo/chitter/internal/pagination"
	"github.com/jsoldo/chitter/internal/repository"
)

// cheetEditWindow is how long after posting a cheet stays editable.
const cheetEditWindow = 10 * time.Minute

var (
	ErrCheetNotFound     = errors.New("cheet not found")
	ErrNotCheetOwner     = errors.New("only the author can perform this action")
	ErrCheetHasReplies   = errors.New("cheet with replies can no longer be edited")
	ErrEditWindowExpired = errors.New("cheet is too old to edit")
)

type CheetService struct {
	cheetRepo repository.CheetRepository
}

func NewCheetService(cheetRepo repository.CheetRepository) *CheetService {
	return &CheetService{cheetRepo: cheetRepo}
}

type CheetListResponse struct {
	Cheets  []domain.Cheet `json:"cheets"`
	HasNext bool           `json:"has_next"`
}

func (s *CheetService) Create(ctx context.Context, userID uuid.UUID, text string) (*domain.Cheet, error) {
	now := time.Now()
	cheet := &domain.Cheet{
		ID:        uuid.New(),
		UserID:    userID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.cheetRepo.Create(ctx, cheet); err != nil {
		return nil, fmt.Errorf("creating cheet: %w", err)
	}

	return s.cheetRepo.GetByID(ctx, cheet.ID)
}

// Fetch returns one page of cheets, newest first. A page user means a profile
// view; otherwise a session user means the home feed (own cheets plus
// followed authors); with neither the listing is global.
func (s *CheetService) Fetch(ctx context.Context, take int, sessionUserID, pageUserID, cursor *uuid.UUID) (*CheetListResponse, error) {
	before, err := s.resolveCursor(ctx, cursor)
	if err != nil {
		return nil, err
	}

	filter := repository.CheetFilter{
		PageUserID:    pageUserID,
		SessionUserID: sessionUserID,
	}

	cheets, err := s.cheetRepo.List(ctx, filter, before, pagination.Window(take))
	if err != nil {
		return nil, err
	}

	page, hasNext := pagination.Trim(cheets, take)
	return &CheetListResponse{Cheets: page, HasNext: hasNext}, nil
}

// Update edits a cheet's text. Only the author may edit, only within the edit
// window, and only while nobody has replied.
func (s *CheetService) Update(ctx context.Context, userID, cheetID uuid.UUID, text string) (*domain.Cheet, error) {
	cheet, err := s.cheetRepo.GetByID(ctx, cheetID)
	if err != nil {
		return nil, err
	}
	if cheet == nil {
		return nil, ErrCheetNotFound
	}
	if cheet.UserID != userID {
		return nil, ErrNotCheetOwner
	}
	if cheet.HasReplies {
		return nil, ErrCheetHasReplies
	}
	if time.Since(cheet.CreatedAt) > cheetEditWindow {
		return nil, ErrEditWindowExpired
	}

	if err := s.cheetRepo.UpdateText(ctx, cheetID, text); err != nil {
		return nil, fmt.Errorf("updating cheet: %w", err)
	}

	return s.cheetRepo.GetByID(ctx, cheetID)
}

// Delete removes a cheet. Authors can delete at any time, replies or not.
func (s *CheetService) Delete(ctx context.Context, userID, cheetID uuid.UUID) error {
	cheet, err := s.cheetRepo.GetByID(ctx, cheetID)
	if err != nil {
		return err
	}
	if cheet == nil {
		return ErrCheetNotFound
	}
	if cheet.UserID != userID {
		return ErrNotCheetOwner
	}

	return s.cheetRepo.Delete(ctx, cheetID)
}

func (s *CheetService) resolveCursor(ctx context.Context, cursor *uuid.UUID) (*uuid.UUID, error) {
	if cursor == nil {
		return nil, nil
	}
	cheet, err := s.cheetRepo.GetByID(ctx, *cursor)
	if err != nil {
		return nil, err
	}
	if cheet == nil {
		return nil, nil
	}
	return cursor, nil
}
