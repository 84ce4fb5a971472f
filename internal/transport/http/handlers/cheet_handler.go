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

type CheetHandler struct {
	cheetService *service.CheetService
	log          *zap.Logger
}

func NewCheetHandler(cheetService *service.CheetService, log *zap.Logger) *CheetHandler {
	return &CheetHandler{cheetService: cheetService, log: log}
}

func (h *CheetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.ValidateCheet(input.Text); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	cheet, err := h.cheetService.Create(r.Context(), userID, input.Text)
	if err != nil {
		h.log.Error("create cheet", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, cheet)
}

// List serves the profile view (?user=), the home feed (authenticated, no
// ?user=) and the global view (anonymous) from one route.
func (h *CheetHandler) List(w http.ResponseWriter, r *http.Request) {
	take, ok := parseTake(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TAKE", "take must be a non-negative integer")
		return
	}

	var sessionUserID *uuid.UUID
	if id, ok := middleware.UserIDFrom(r.Context()); ok {
		sessionUserID = &id
	}

	var pageUserID *uuid.UUID
	if raw := r.URL.Query().Get("user"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
			return
		}
		pageUserID = &id
	}

	resp, err := h.cheetService.Fetch(r.Context(), take, sessionUserID, pageUserID, parseCursor(r))
	if err != nil {
		h.log.Error("list cheets", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *CheetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	cheetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid cheet ID")
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if errs := validator.ValidateCheet(input.Text); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	cheet, err := h.cheetService.Update(r.Context(), userID, cheetID, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCheetNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Cheet not found")
		case errors.Is(err, service.ErrNotCheetOwner):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only edit your own cheets")
		case errors.Is(err, service.ErrCheetHasReplies):
			writeError(w, http.StatusConflict, "HAS_REPLIES", "Cheets with replies can no longer be edited")
		case errors.Is(err, service.ErrEditWindowExpired):
			writeError(w, http.StatusConflict, "EDIT_WINDOW_EXPIRED", "Cheet is too old to edit")
		default:
			h.log.Error("update cheet", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, cheet)
}

func (h *CheetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	cheetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid cheet ID")
		return
	}

	if err := h.cheetService.Delete(r.Context(), userID, cheetID); err != nil {
		switch {
		case errors.Is(err, service.ErrCheetNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Cheet not found")
		case errors.Is(err, service.ErrNotCheetOwner):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only delete your own cheets")
		default:
			h.log.Error("delete cheet", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
