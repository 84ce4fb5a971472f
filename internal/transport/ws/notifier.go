package ws

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jsoldo/chitter/internal/domain"
)

// HubNotifier pushes message events to connected clients.
// It implements service.Notifier.
type HubNotifier struct {
	hub *Hub
	log *zap.Logger
}

func NewHubNotifier(hub *Hub, log *zap.Logger) *HubNotifier {
	return &HubNotifier{hub: hub, log: log}
}

func (n *HubNotifier) NotifyNewMessage(msg *domain.Message) {
	evt, err := NewEvent(EventTypeMessageNew, MessagePayload{Message: *msg})
	if err != nil {
		n.log.Error("ws notify new message", zap.Error(err))
		return
	}

	n.hub.BroadcastToUser(msg.RecipientID, evt)
	if msg.SenderID != msg.RecipientID {
		n.hub.BroadcastToUser(msg.SenderID, evt)
	}
}

func (n *HubNotifier) NotifyMessagesRead(readerID, interlocutorID uuid.UUID, count int64) {
	evt, err := NewEvent(EventTypeMessageRead, MessagesReadPayload{
		ReaderID: readerID,
		Count:    count,
	})
	if err != nil {
		n.log.Error("ws notify messages read", zap.Error(err))
		return
	}

	n.hub.BroadcastToUser(interlocutorID, evt)
}

func (n *HubNotifier) NotifyDeletedMessage(msg *domain.Message) {
	evt, err := NewEvent(EventTypeMessageDeleted, MessageDeletedPayload{
		ID:       msg.ID,
		SenderID: msg.SenderID,
	})
	if err != nil {
		n.log.Error("ws notify deleted message", zap.Error(err))
		return
	}

	n.hub.BroadcastToUser(msg.RecipientID, evt)
	if msg.SenderID != msg.RecipientID {
		n.hub.BroadcastToUser(msg.SenderID, evt)
	}
}
