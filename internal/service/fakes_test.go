package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsoldo/chitter/internal/domain"
	"github.com/jsoldo/chitter/internal/repository"
)

type fakeUserRepo struct {
	createFn        func(context.Context, *domain.User) error
	getByIDFn       func(context.Context, uuid.UUID) (*domain.User, error)
	getByUsernameFn func(context.Context, string) (*domain.User, error)
	searchFn        func(context.Context, string, *uuid.UUID, *uuid.UUID, int) ([]domain.UserView, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.getByUsernameFn == nil {
		return nil, nil
	}
	return f.getByUsernameFn(ctx, username)
}

func (f *fakeUserRepo) Search(ctx context.Context, substring string, sessionUserID, after *uuid.UUID, limit int) ([]domain.UserView, error) {
	if f.searchFn == nil {
		return nil, nil
	}
	return f.searchFn(ctx, substring, sessionUserID, after, limit)
}

type fakeCheetRepo struct {
	createFn     func(context.Context, *domain.Cheet) error
	getByIDFn    func(context.Context, uuid.UUID) (*domain.Cheet, error)
	listFn       func(context.Context, repository.CheetFilter, *uuid.UUID, int) ([]domain.Cheet, error)
	updateTextFn func(context.Context, uuid.UUID, string) error
	deleteFn     func(context.Context, uuid.UUID) error
}

func (f *fakeCheetRepo) Create(ctx context.Context, cheet *domain.Cheet) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, cheet)
}

func (f *fakeCheetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cheet, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeCheetRepo) List(ctx context.Context, filter repository.CheetFilter, before *uuid.UUID, limit int) ([]domain.Cheet, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, filter, before, limit)
}

func (f *fakeCheetRepo) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	if f.updateTextFn == nil {
		return nil
	}
	return f.updateTextFn(ctx, id, text)
}

func (f *fakeCheetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type fakeReplyRepo struct {
	createFn      func(context.Context, *domain.Reply) error
	getByIDFn     func(context.Context, uuid.UUID) (*domain.Reply, error)
	listByCheetFn func(context.Context, uuid.UUID, *uuid.UUID, int) ([]domain.Reply, error)
}

func (f *fakeReplyRepo) Create(ctx context.Context, reply *domain.Reply) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, reply)
}

func (f *fakeReplyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeReplyRepo) ListByCheet(ctx context.Context, cheetID uuid.UUID, before *uuid.UUID, limit int) ([]domain.Reply, error) {
	if f.listByCheetFn == nil {
		return nil, nil
	}
	return f.listByCheetFn(ctx, cheetID, before, limit)
}

type fakeMessageRepo struct {
	sendFn        func(context.Context, *domain.Message) error
	getByIDFn     func(context.Context, uuid.UUID) (*domain.Message, error)
	listBetweenFn func(context.Context, uuid.UUID, uuid.UUID, *uuid.UUID, int) ([]domain.Message, error)
	markReadFn    func(context.Context, uuid.UUID, uuid.UUID) (int64, error)
	softDeleteFn  func(context.Context, uuid.UUID) error
}

func (f *fakeMessageRepo) Send(ctx context.Context, msg *domain.Message) error {
	if f.sendFn == nil {
		return nil
	}
	return f.sendFn(ctx, msg)
}

func (f *fakeMessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeMessageRepo) ListBetween(ctx context.Context, userID, interlocutorID uuid.UUID, before *uuid.UUID, limit int) ([]domain.Message, error) {
	if f.listBetweenFn == nil {
		return nil, nil
	}
	return f.listBetweenFn(ctx, userID, interlocutorID, before, limit)
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, userID, interlocutorID uuid.UUID) (int64, error) {
	if f.markReadFn == nil {
		return 0, nil
	}
	return f.markReadFn(ctx, userID, interlocutorID)
}

func (f *fakeMessageRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if f.softDeleteFn == nil {
		return nil
	}
	return f.softDeleteFn(ctx, id)
}

type fakeConversationRepo struct {
	getByIDFn      func(context.Context, uuid.UUID) (*domain.Conversation, error)
	getByPairKeyFn func(context.Context, string) (*domain.Conversation, error)
	listForUserFn  func(context.Context, uuid.UUID, []uuid.UUID, *uuid.UUID, int) ([]domain.ConversationView, error)
}

func (f *fakeConversationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeConversationRepo) GetByPairKey(ctx context.Context, key string) (*domain.Conversation, error) {
	if f.getByPairKeyFn == nil {
		return nil, nil
	}
	return f.getByPairKeyFn(ctx, key)
}

func (f *fakeConversationRepo) ListForUser(ctx context.Context, userID uuid.UUID, interlocutorIDs []uuid.UUID, before *uuid.UUID, limit int) ([]domain.ConversationView, error) {
	if f.listForUserFn == nil {
		return nil, nil
	}
	return f.listForUserFn(ctx, userID, interlocutorIDs, before, limit)
}

type fakeFollowRepo struct {
	createFn func(context.Context, uuid.UUID, uuid.UUID) error
	deleteFn func(context.Context, uuid.UUID, uuid.UUID) error
	existsFn func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
}

func (f *fakeFollowRepo) Create(ctx context.Context, followerID, followedID uuid.UUID) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, followerID, followedID)
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, followerID, followedID)
}

func (f *fakeFollowRepo) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	if f.existsFn == nil {
		return false, nil
	}
	return f.existsFn(ctx, followerID, followedID)
}

type fakeNotifier struct {
	newMessageFn     func(*domain.Message)
	messagesReadFn   func(uuid.UUID, uuid.UUID, int64)
	deletedMessageFn func(*domain.Message)
}

func (f *fakeNotifier) NotifyNewMessage(msg *domain.Message) {
	if f.newMessageFn != nil {
		f.newMessageFn(msg)
	}
}

func (f *fakeNotifier) NotifyMessagesRead(readerID, interlocutorID uuid.UUID, count int64) {
	if f.messagesReadFn != nil {
		f.messagesReadFn(readerID, interlocutorID, count)
	}
}

func (f *fakeNotifier) NotifyDeletedMessage(msg *domain.Message) {
	if f.deletedMessageFn != nil {
		f.deletedMessageFn(msg)
	}
}
