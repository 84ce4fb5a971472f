package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/service"
	"github.com/jsoldo/chitter/internal/transport/http/middleware"
	"github.com/jsoldo/chitter/pkg/validator"
	"go.uber.org/zap"
)

type MessageHandler struct {
	msgService *service.MessageService
	log        *zap.Logger
}

func NewMessageHandler(msgService *service.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{msgService: msgService, log: log}
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	recipientID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.ValidateMessage(input.Text); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	msg, err := h.msgService.Send(r.Context(), userID, recipientID, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			h.log.Error("send message", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	interlocutorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	take, ok := parseTake(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TAKE", "take must be a non-negative integer")
		return
	}

	resp, err := h.msgService.Fetch(r.Context(), take, userID, interlocutorID, parseCursor(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			h.log.Error("list messages", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Read is the read-receipt endpoint: opening a thread marks everything the
// interlocutor sent as read.
func (h *MessageHandler) Read(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	interlocutorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	count, err := h.msgService.Read(r.Context(), userID, interlocutorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			h.log.Error("read messages", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	messageID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid message ID")
		return
	}

	if err := h.msgService.Delete(r.Context(), userID, messageID); err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Message not found")
		case errors.Is(err, service.ErrNotMessageSender):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only delete your own messages")
		default:
			h.log.Error("delete message", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
