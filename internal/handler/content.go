package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nordfolio/nordfolio/internal/model"
	"github.com/nordfolio/nordfolio/internal/service"
)

// Content handles HTTP CRUD for one ordered content collection. A single
// generic implementation serves every entity type; routes differ only in
// the service they wrap.
type Content[T any] struct {
	svc    *service.Content[T]
	logger *slog.Logger
	// name labels log lines, e.g. "project".
	name string
}

// NewContent creates a content handler for one collection.
func NewContent[T any](svc *service.Content[T], name string, logger *slog.Logger) *Content[T] {
	return &Content[T]{
		svc:    svc,
		logger: logger,
		name:   name,
	}
}

// Create handles POST /api/v1/{collection}.
func (h *Content[T]) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	e := new(T)
	if err := json.Unmarshal(body, e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Distinguish an explicit "order": 0 from an omitted field; omitted
	// means append to the end of the collection.
	var probe struct {
		Order *int `json:"order"`
	}
	_ = json.Unmarshal(body, &probe)

	created, err := h.svc.Create(r.Context(), e, probe.Order != nil)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info(h.name+"_created",
		"id", record(created).ID,
		"request_id", requestID(r),
	)

	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/v1/{collection}/{id}.
func (h *Content[T]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, e)
}

// List handles GET /api/v1/{collection}. Public; returns the collection
// in display order.
func (h *Content[T]) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, entities)
}

// Update handles PUT /api/v1/{collection}/{id}. The stored entity is
// loaded first and the request body decoded over it, so omitted fields
// keep their current values.
func (h *Content[T]) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	record(e).ID = id

	updated, err := h.svc.Update(r.Context(), e)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info(h.name+"_updated",
		"id", id,
		"request_id", requestID(r),
	)

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/{collection}/{id}.
func (h *Content[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	h.logger.Info(h.name+"_deleted",
		"id", id,
		"request_id", requestID(r),
	)

	w.WriteHeader(http.StatusNoContent)
}

func record[T any](e *T) *model.OrderedRecord {
	return any(e).(interface{ Record() *model.OrderedRecord }).Record()
}
