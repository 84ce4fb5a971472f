package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/service"
	"github.com/jsoldo/chitter/internal/transport/http/middleware"
	"go.uber.org/zap"
)

type ConversationHandler struct {
	convService *service.ConversationService
	log         *zap.Logger
}

func NewConversationHandler(convService *service.ConversationService, log *zap.Logger) *ConversationHandler {
	return &ConversationHandler{convService: convService, log: log}
}

// List returns the session user's conversations, optionally restricted to
// ?interlocutors=<id>,<id>.
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	take, ok := parseTake(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TAKE", "take must be a non-negative integer")
		return
	}

	var interlocutorIDs []uuid.UUID
	if raw := r.URL.Query().Get("interlocutors"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid interlocutor ID")
				return
			}
			interlocutorIDs = append(interlocutorIDs, id)
		}
	}

	resp, err := h.convService.Fetch(r.Context(), take, userID, interlocutorIDs, parseCursor(r))
	if err != nil {
		h.log.Error("list conversations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
