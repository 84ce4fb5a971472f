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

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrNotMessageSender = errors.New("only the message sender can perform this action")
)

type MessageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

func (s *MessageService) SetNotifier(n Notifier) {
	s.notifier = n
}

type MessageListResponse struct {
	Messages []domain.Message `json:"messages"`
	HasNext  bool             `json:"has_next"`
}

// Send creates a message to recipientID. Messaging yourself is allowed and
// such messages are born read, so they never raise an unread flag.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, text string) (*domain.Message, error) {
	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	msg := &domain.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        &text,
		IsRead:      senderID == recipientID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.msgRepo.Send(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	full, err := s.msgRepo.GetByID(ctx, msg.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(full)
	}

	return full, nil
}

// Fetch returns one page of the thread between userID and interlocutorID in
// chronological order. The store hands back a newest-first window; the page
// is trimmed first, then reversed, then soft-deleted text is redacted — in
// that order, so the trim operates on truthful row counts.
func (s *MessageService) Fetch(ctx context.Context, take int, userID, interlocutorID uuid.UUID, cursor *uuid.UUID) (*MessageListResponse, error) {
	interlocutor, err := s.userRepo.GetByID(ctx, interlocutorID)
	if err != nil {
		return nil, err
	}
	if interlocutor == nil {
		return nil, ErrUserNotFound
	}

	before, err := s.resolveCursor(ctx, cursor)
	if err != nil {
		return nil, err
	}

	messages, err := s.msgRepo.ListBetween(ctx, userID, interlocutorID, before, pagination.Window(take))
	if err != nil {
		return nil, err
	}

	page, hasNext := pagination.Trim(messages, take)

	for i, j := 0, len(page)-1; i < j; i, j = i+1, j-1 {
		page[i], page[j] = page[j], page[i]
	}

	for i := range page {
		page[i].Redact()
	}

	return &MessageListResponse{Messages: page, HasNext: hasNext}, nil
}

// Read marks everything the interlocutor sent to userID as read and clears
// userID's unread flag on the conversation. Returns how many messages were
// pending; zero is a normal result.
func (s *MessageService) Read(ctx context.Context, userID, interlocutorID uuid.UUID) (int64, error) {
	interlocutor, err := s.userRepo.GetByID(ctx, interlocutorID)
	if err != nil {
		return 0, err
	}
	if interlocutor == nil {
		return 0, ErrUserNotFound
	}

	count, err := s.msgRepo.MarkRead(ctx, userID, interlocutorID)
	if err != nil {
		return 0, err
	}

	if s.notifier != nil && count > 0 {
		s.notifier.NotifyMessagesRead(userID, interlocutorID, count)
	}

	return count, nil
}

// Delete soft-deletes a message: the row stays, the text is gone.
func (s *MessageService) Delete(ctx context.Context, userID, messageID uuid.UUID) error {
	msg, err := s.msgRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrMessageNotFound
	}
	if msg.SenderID != userID {
		return ErrNotMessageSender
	}

	if err := s.msgRepo.SoftDelete(ctx, messageID); err != nil {
		return err
	}

	if s.notifier != nil {
		msg.Text = nil
		msg.IsDeleted = true
		s.notifier.NotifyDeletedMessage(msg)
	}

	return nil
}

// resolveCursor validates a caller-supplied cursor. An id that no longer
// resolves silently means "first page"; store errors still propagate.
func (s *MessageService) resolveCursor(ctx context.Context, cursor *uuid.UUID) (*uuid.UUID, error) {
	if cursor == nil {
		return nil, nil
	}
	msg, err := s.msgRepo.GetByID(ctx, *cursor)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, nil
	}
	return cursor, nil
}
