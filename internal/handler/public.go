package handler

import (
	"log/slog"
	"net/http"

	"github.com/nordfolio/nordfolio/internal/service"
)

// PublicHandler serves the cached public portfolio rendering.
type PublicHandler struct {
	svc    *service.Portfolio
	logger *slog.Logger
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(svc *service.Portfolio, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{svc: svc, logger: logger}
}

// Portfolio handles GET /. This is the anonymous hot path: cache hit or
// a single rebuild from the content store.
func (h *PublicHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	payload, cached, err := h.svc.Render(r.Context())
	if err != nil {
		h.logger.Error("portfolio render failed",
			slog.String("error", err.Error()),
			slog.String("request_id", requestID(r)),
		)
		writeError(w, http.StatusInternalServerError, "failed to render portfolio")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
