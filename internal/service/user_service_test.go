package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsoldo/chitter/internal/domain"
)

func TestUserSearchBlankQueryShortCircuits(t *testing.T) {
	called := false
	repo := &fakeUserRepo{
		searchFn: func(_ context.Context, _ string, _, _ *uuid.UUID, _ int) ([]domain.UserView, error) {
			called = true
			return nil, nil
		},
	}

	svc := NewUserService(repo)

	for _, query := range []string{"", "   ", "\t"} {
		resp, err := svc.Search(context.Background(), 20, query, nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, resp.Users)
		assert.Empty(t, resp.Users)
		assert.False(t, resp.HasNext)
	}
	assert.False(t, called)
}

func TestUserSearchTrimsQueryAndPassesSession(t *testing.T) {
	session := uuid.New()

	var gotQuery string
	var gotSession *uuid.UUID
	repo := &fakeUserRepo{
		searchFn: func(_ context.Context, substring string, sessionUserID, _ *uuid.UUID, limit int) ([]domain.UserView, error) {
			gotQuery = substring
			gotSession = sessionUserID
			assert.Equal(t, 21, limit)
			return nil, nil
		},
	}

	svc := NewUserService(repo)

	_, err := svc.Search(context.Background(), 20, "  bob ", &session, nil)
	require.NoError(t, err)
	assert.Equal(t, "bob", gotQuery)
	require.NotNil(t, gotSession)
	assert.Equal(t, session, *gotSession)
}

func TestUserSearchAnonymousKeepsFollowStateUnknown(t *testing.T) {
	repo := &fakeUserRepo{
		searchFn: func(_ context.Context, _ string, sessionUserID, _ *uuid.UUID, _ int) ([]domain.UserView, error) {
			assert.Nil(t, sessionUserID)
			return []domain.UserView{{ID: uuid.New(), Username: "bob"}}, nil
		},
	}

	svc := NewUserService(repo)

	resp, err := svc.Search(context.Background(), 20, "bob", nil, nil)
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Nil(t, resp.Users[0].IsFollowing)
}

func TestUserSearchTrimsOverfetch(t *testing.T) {
	repo := &fakeUserRepo{
		searchFn: func(_ context.Context, _ string, _, _ *uuid.UUID, limit int) ([]domain.UserView, error) {
			users := make([]domain.UserView, limit)
			for i := range users {
				users[i] = domain.UserView{ID: uuid.New()}
			}
			return users, nil
		},
	}

	svc := NewUserService(repo)

	resp, err := svc.Search(context.Background(), 10, "b", nil, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Users, 10)
	assert.True(t, resp.HasNext)
}

func TestUserSearchDanglingCursor(t *testing.T) {
	cursor := uuid.New()

	var gotAfter *uuid.UUID
	repo := &fakeUserRepo{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.User, error) {
			return nil, nil
		},
		searchFn: func(_ context.Context, _ string, _, after *uuid.UUID, _ int) ([]domain.UserView, error) {
			gotAfter = after
			return nil, nil
		},
	}

	svc := NewUserService(repo)

	_, err := svc.Search(context.Background(), 20, "bob", nil, &cursor)
	require.NoError(t, err)
	assert.Nil(t, gotAfter)
}

func TestUserGetByUsername(t *testing.T) {
	repo := &fakeUserRepo{
		getByUsernameFn: func(_ context.Context, username string) (*domain.User, error) {
			if username == "alice" {
				return &domain.User{ID: uuid.New(), Username: "alice"}, nil
			}
			return nil, nil
		},
	}

	svc := NewUserService(repo)

	user, err := svc.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}
