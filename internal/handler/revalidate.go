package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/nordfolio/nordfolio/internal/service"
)

// RevalidateHandler forces the cached public rendering stale outside the
// normal write path. Useful after out-of-band database edits.
type RevalidateHandler struct {
	invalidator service.Invalidator
	logger      *slog.Logger
}

// NewRevalidateHandler creates a new RevalidateHandler.
func NewRevalidateHandler(invalidator service.Invalidator, logger *slog.Logger) *RevalidateHandler {
	return &RevalidateHandler{invalidator: invalidator, logger: logger}
}

// RevalidateRequest optionally names the path to invalidate.
type RevalidateRequest struct {
	Path string `json:"path"`
}

// Revalidate handles POST /api/v1/revalidate. Admin only.
func (h *RevalidateHandler) Revalidate(w http.ResponseWriter, r *http.Request) {
	var req RevalidateRequest
	if r.Body != nil {
		// An empty or absent body means the default path.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	path := req.Path
	if path == "" {
		path = service.PublicPath
	}

	if err := h.invalidator.InvalidateRender(r.Context(), path); err != nil {
		h.logger.Error("explicit revalidation failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to revalidate")
		return
	}

	h.logger.Info("revalidated", "path", path, "request_id", requestID(r))

	writeJSON(w, http.StatusOK, map[string]any{
		"revalidated": true,
		"path":        path,
		"now":         time.Now().UTC().UnixMilli(),
	})
}
