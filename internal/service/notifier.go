package service

import (
	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/domain"
)

// Notifier pushes realtime events to connected clients without binding the
// service layer to a transport. The WebSocket hub implements it; tests leave
// it nil.
type Notifier interface {
	NotifyNewMessage(msg *domain.Message)
	NotifyMessagesRead(readerID, interlocutorID uuid.UUID, count int64)
	NotifyDeletedMessage(msg *domain.Message)
}
