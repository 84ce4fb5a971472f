package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsoldo/chitter/internal/domain"
)

func TestConversationFetchTrims(t *testing.T) {
	me := uuid.New()

	repo := &fakeConversationRepo{
		listForUserFn: func(_ context.Context, userID uuid.UUID, _ []uuid.UUID, _ *uuid.UUID, limit int) ([]domain.ConversationView, error) {
			assert.Equal(t, me, userID)
			convs := make([]domain.ConversationView, limit)
			for i := range convs {
				convs[i] = domain.ConversationView{ID: uuid.New()}
			}
			return convs, nil
		},
	}

	svc := NewConversationService(repo)

	resp, err := svc.Fetch(context.Background(), 2, me, nil, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Conversations, 2)
	assert.True(t, resp.HasNext)
}

func TestConversationFetchRedactsDeletedPreview(t *testing.T) {
	me := uuid.New()
	leftover := "you can still see this"

	repo := &fakeConversationRepo{
		listForUserFn: func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, _ *uuid.UUID, _ int) ([]domain.ConversationView, error) {
			return []domain.ConversationView{
				{
					ID: uuid.New(),
					LatestMessage: &domain.Message{
						ID:        uuid.New(),
						Text:      &leftover,
						IsDeleted: true,
					},
				},
				{ID: uuid.New(), LatestMessage: nil},
			}, nil
		},
	}

	svc := NewConversationService(repo)

	resp, err := svc.Fetch(context.Background(), 20, me, nil, nil)
	require.NoError(t, err)
	require.Len(t, resp.Conversations, 2)
	require.NotNil(t, resp.Conversations[0].LatestMessage)
	assert.Nil(t, resp.Conversations[0].LatestMessage.Text)
	assert.Nil(t, resp.Conversations[1].LatestMessage)
}

func TestConversationFetchInterlocutorFilterPassesThrough(t *testing.T) {
	me := uuid.New()
	filter := []uuid.UUID{uuid.New(), uuid.New()}

	var gotFilter []uuid.UUID
	repo := &fakeConversationRepo{
		listForUserFn: func(_ context.Context, _ uuid.UUID, interlocutorIDs []uuid.UUID, _ *uuid.UUID, _ int) ([]domain.ConversationView, error) {
			gotFilter = interlocutorIDs
			return nil, nil
		},
	}

	svc := NewConversationService(repo)

	_, err := svc.Fetch(context.Background(), 20, me, filter, nil)
	require.NoError(t, err)
	assert.Equal(t, filter, gotFilter)
}

func TestConversationFetchDanglingCursor(t *testing.T) {
	me := uuid.New()
	cursor := uuid.New()

	var gotBefore *uuid.UUID
	repo := &fakeConversationRepo{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.Conversation, error) {
			return nil, nil
		},
		listForUserFn: func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, before *uuid.UUID, _ int) ([]domain.ConversationView, error) {
			gotBefore = before
			return nil, nil
		},
	}

	svc := NewConversationService(repo)

	_, err := svc.Fetch(context.Background(), 20, me, nil, &cursor)
	require.NoError(t, err)
	assert.Nil(t, gotBefore)
}

func TestConversationFetchValidCursor(t *testing.T) {
	me := uuid.New()
	cursor := uuid.New()

	var gotBefore *uuid.UUID
	repo := &fakeConversationRepo{
		getByIDFn: func(_ context.Context, id uuid.UUID) (*domain.Conversation, error) {
			return &domain.Conversation{ID: id}, nil
		},
		listForUserFn: func(_ context.Context, _ uuid.UUID, _ []uuid.UUID, before *uuid.UUID, _ int) ([]domain.ConversationView, error) {
			gotBefore = before
			return nil, nil
		},
	}

	svc := NewConversationService(repo)

	_, err := svc.Fetch(context.Background(), 20, me, nil, &cursor)
	require.NoError(t, err)
	require.NotNil(t, gotBefore)
	assert.Equal(t, cursor, *gotBefore)
}
