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

type ReplyHandler struct {
	replyService *service.ReplyService
	log          *zap.Logger
}

func NewReplyHandler(replyService *service.ReplyService, log *zap.Logger) *ReplyHandler {
	return &ReplyHandler{replyService: replyService, log: log}
}

func (h *ReplyHandler) Create(w http.ResponseWriter, r *http.Request) {
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
	if errs := validator.ValidateReply(input.Text); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	reply, err := h.replyService.Create(r.Context(), userID, cheetID, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCheetNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Cheet not found")
		default:
			h.log.Error("create reply", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, reply)
}

func (h *ReplyHandler) List(w http.ResponseWriter, r *http.Request) {
	cheetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid cheet ID")
		return
	}

	take, ok := parseTake(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TAKE", "take must be a non-negative integer")
		return
	}

	resp, err := h.replyService.Fetch(r.Context(), take, cheetID, parseCursor(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCheetNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Cheet not found")
		default:
			h.log.Error("list replies", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
