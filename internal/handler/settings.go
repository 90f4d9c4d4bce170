package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nordfolio/nordfolio/internal/service"
)

// SettingsHandler handles the site settings singleton.
type SettingsHandler struct {
	svc    *service.Settings
	logger *slog.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(svc *service.Settings, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, logger: logger}
}

// Get handles GET /api/v1/settings. Public; lazily creates the row with
// defaults on first read.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Get(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// Update handles PUT /api/v1/settings. The stored record is loaded first
// and the body decoded over it, so omitted fields keep their values.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Get(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), settings)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info("settings_updated", "request_id", requestID(r))

	writeJSON(w, http.StatusOK, updated)
}
