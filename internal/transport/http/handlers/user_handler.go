package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jsoldo/chitter/internal/service"
	"github.com/jsoldo/chitter/internal/transport/http/middleware"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService   *service.UserService
	followService *service.FollowService
	log           *zap.Logger
}

func NewUserHandler(userService *service.UserService, followService *service.FollowService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, followService: followService, log: log}
}

// Search lists users matching ?q=. Anonymous searches work too; they just get
// no follow annotation.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	take, ok := parseTake(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TAKE", "take must be a non-negative integer")
		return
	}

	var sessionUserID *uuid.UUID
	if id, ok := middleware.UserIDFrom(r.Context()); ok {
		sessionUserID = &id
	}

	resp, err := h.userService.Search(r.Context(), take, r.URL.Query().Get("q"), sessionUserID, parseCursor(r))
	if err != nil {
		h.log.Error("search users", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			h.log.Error("get profile", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	targetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	if err := h.followService.Follow(r.Context(), userID, targetID); err != nil {
		switch {
		case errors.Is(err, service.ErrCannotFollowSelf):
			writeError(w, http.StatusBadRequest, "CANNOT_FOLLOW_SELF", "Cannot follow yourself")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			h.log.Error("follow", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	targetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	if err := h.followService.Unfollow(r.Context(), userID, targetID); err != nil {
		h.log.Error("unfollow", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
