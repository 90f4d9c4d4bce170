package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nordfolio/nordfolio/internal/middleware"
	"github.com/nordfolio/nordfolio/internal/service"
)

// AnalyticsHandler handles the public beacon and the admin event list.
type AnalyticsHandler struct {
	svc    *service.Analytics
	logger *slog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *service.Analytics, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, logger: logger}
}

// RecordRequest is the public analytics beacon payload.
type RecordRequest struct {
	Page  string          `json:"page"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Record handles POST /api/v1/analytics. Public, fire-and-forget:
// a store failure still answers 200 so the beacon never breaks the page.
func (h *AnalyticsHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.Record(r.Context(), service.RecordInput{
		Page:      req.Page,
		Event:     req.Event,
		Data:      string(req.Data),
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.logger.Warn("analytics record failed", "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// List handles GET /api/v1/analytics?limit=N. Admin only.
func (h *AnalyticsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}

	events, err := h.svc.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}
