package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordfolio/nordfolio/internal/service"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	svc    *service.Inbox
	logger *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc *service.Inbox, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, logger: logger}
}

// SubmitRequest is the public contact form payload.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/v1/contact. Public.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.svc.Submit(r.Context(), service.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("contact_submitted",
		"id", submission.ID,
		"request_id", requestID(r),
	)

	writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "id": submission.ID})
}

// List handles GET /api/v1/contact?archived=true|false. Admin only.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	archived := r.URL.Query().Get("archived") == "true"

	submissions, err := h.svc.List(r.Context(), archived)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, submissions)
}

// FlagsRequest flips inbox flags; nil fields stay unchanged.
type FlagsRequest struct {
	Read     *bool `json:"read"`
	Archived *bool `json:"archived"`
}

// UpdateFlags handles PATCH /api/v1/contact/{id}. Admin only.
func (h *ContactHandler) UpdateFlags(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	var req FlagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submission, err := h.svc.SetFlags(r.Context(), id, req.Read, req.Archived)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, submission)
}

// Delete handles DELETE /api/v1/contact/{id}. Admin only.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("contact_deleted", "id", id, "request_id", requestID(r))

	w.WriteHeader(http.StatusNoContent)
}
