// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shopkori/assistant-platform/internal/locale"
	"github.com/shopkori/assistant-platform/internal/middleware"
	"github.com/shopkori/assistant-platform/internal/model"
	"github.com/shopkori/assistant-platform/internal/session"
	"github.com/shopkori/assistant-platform/pkg/logger"
)

// ChatHandler handles chat session endpoints.
type ChatHandler struct {
	registry *session.Registry
	logger   *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(registry *session.Registry, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		registry: registry,
		logger:   log,
	}
}

// Create handles POST /api/v1/chat/sessions
func (h *ChatHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	ctrl, err := h.registry.Create(ctx, middleware.GetUser(ctx), req.Locale)
	if err != nil {
		if errors.Is(err, locale.ErrUnknown) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create session", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	writeJSON(w, http.StatusCreated, ctrl.State())
}

// Get handles GET /api/v1/chat/sessions/:id
func (h *ChatHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ctrl.State())
}

// Submit handles POST /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req model.SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateMessageText(req.Text); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userMsg, assistantMsg, err := ctrl.Submit(r.Context(), req.Text, req.CurrentPage)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyMessage):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, session.ErrBusy):
			writeError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to submit message", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to submit message")
		}
		return
	}

	writeJSON(w, http.StatusOK, model.SubmitMessageResponse{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		Unread:           ctrl.State().Unread,
	})
}

// Toggle handles POST /api/v1/chat/sessions/:id/toggle
func (h *ChatHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ctrl.Toggle())
}

// Clear handles POST /api/v1/chat/sessions/:id/clear
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}
	ctrl.Clear(r.Context())
	writeJSON(w, http.StatusOK, ctrl.State())
}

// SetLocale handles PUT /api/v1/chat/sessions/:id/locale
func (h *ChatHandler) SetLocale(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req model.SetLocaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := ctrl.SetLocale(r.Context(), req.Locale); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ctrl.State())
}

// Delete handles DELETE /api/v1/chat/sessions/:id
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.registry.Delete(r.Context(), sessionID); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// lookup resolves the :id URL parameter to a mounted session, writing
// the error response itself when resolution fails.
func (h *ChatHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Controller, bool) {
	sessionID := chi.URLParam(r, "id")
	if err := middleware.ValidateSessionID(sessionID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	ctrl, err := h.registry.Get(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return ctrl, true
}
