package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/domain"
	"github.com/jsoldo/chitter/internal/pagination"
	"github.com/jsoldo/chitter/internal/repository"
)

type ConversationService struct {
	convRepo repository.ConversationRepository
}

func NewConversationService(convRepo repository.ConversationRepository) *ConversationService {
	return &ConversationService{convRepo: convRepo}
}

type ConversationListResponse struct {
	Conversations []domain.ConversationView `json:"conversations"`
	HasNext       bool                      `json:"has_next"`
}

// Fetch returns one page of the user's conversations, most recently active
// first, already resolved to the caller's point of view. An optional
// interlocutor-id list narrows the result.
func (s *ConversationService) Fetch(ctx context.Context, take int, userID uuid.UUID, interlocutorIDs []uuid.UUID, cursor *uuid.UUID) (*ConversationListResponse, error) {
	before, err := s.resolveCursor(ctx, cursor)
	if err != nil {
		return nil, err
	}

	convs, err := s.convRepo.ListForUser(ctx, userID, interlocutorIDs, before, pagination.Window(take))
	if err != nil {
		return nil, err
	}

	page, hasNext := pagination.Trim(convs, take)

	// Latest-message previews obey the same soft-delete redaction as thread
	// pages.
	for i := range page {
		if page[i].LatestMessage != nil {
			page[i].LatestMessage.Redact()
		}
	}

	return &ConversationListResponse{Conversations: page, HasNext: hasNext}, nil
}

func (s *ConversationService) resolveCursor(ctx context.Context, cursor *uuid.UUID) (*uuid.UUID, error) {
	if cursor == nil {
		return nil, nil
	}
	conv, err := s.convRepo.GetByID(ctx, *cursor)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}
	return cursor, nil
}
