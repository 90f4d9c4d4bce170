package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nordfolio/nordfolio/internal/model"
	"github.com/nordfolio/nordfolio/internal/repository"
)

// ContentStore is the persistence contract for one ordered collection,
// implemented by repository.Ordered.
type ContentStore[T any] interface {
	Create(ctx context.Context, e *T) error
	Get(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ValidateFunc checks an entity's domain fields and returns field-level
// problems, or an empty map when valid.
type ValidateFunc[T any] func(e *T) map[string]string

// Content handles business logic for one ordered content collection.
// One implementation serves all entity types; mutations invalidate the
// public rendering after the write commits.
type Content[T any] struct {
	store       ContentStore[T]
	invalidator Invalidator
	validate    ValidateFunc[T]
	logger      *slog.Logger
}

// NewContent creates a content service for one collection.
func NewContent[T any](store ContentStore[T], invalidator Invalidator, validate ValidateFunc[T], logger *slog.Logger) *Content[T] {
	return &Content[T]{
		store:       store,
		invalidator: invalidator,
		validate:    validate,
		logger:      logger,
	}
}

// Create validates and inserts an entity. When the caller did not supply
// a sort order, the entity is appended: sort order defaults to the current
// collection size.
func (s *Content[T]) Create(ctx context.Context, e *T, orderSet bool) (*T, error) {
	if problems := s.validate(e); len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}

	rec := record(e)
	rec.ID = generateULID()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if !orderSet {
		count, err := s.store.Count(ctx)
		if err != nil {
			return nil, wrapStoreErr("count collection", err)
		}
		rec.SortOrder = count
	}

	if err := s.store.Create(ctx, e); err != nil {
		return nil, wrapStoreErr("create entity", err)
	}

	// Write committed; now mark the public rendering stale.
	s.invalidate(ctx)

	return e, nil
}

// Get retrieves one entity by id.
func (s *Content[T]) Get(ctx context.Context, id string) (*T, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStoreErr("get entity", err)
	}
	return e, nil
}

// List returns the collection in display order.
func (s *Content[T]) List(ctx context.Context) ([]*T, error) {
	entities, err := s.store.List(ctx)
	if err != nil {
		return nil, wrapStoreErr("list collection", err)
	}
	return entities, nil
}

// Update validates and rewrites an entity, then invalidates the rendering.
func (s *Content[T]) Update(ctx context.Context, e *T) (*T, error) {
	if problems := s.validate(e); len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}

	record(e).UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStoreErr("update entity", err)
	}

	s.invalidate(ctx)

	return e, nil
}

// Delete removes an entity and invalidates the rendering. Sort orders of
// the remaining entities are left untouched.
func (s *Content[T]) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return wrapStoreErr("delete entity", err)
	}

	s.invalidate(ctx)

	return nil
}

// invalidate requests the render cache drop the public page. Best-effort:
// it runs only after the write is committed, and a failure is logged and
// swallowed because the TTL fallback bounds the resulting staleness.
// Never couple this to the database write transactionally.
func (s *Content[T]) invalidate(ctx context.Context) {
	if err := s.invalidator.InvalidateRender(ctx, PublicPath); err != nil {
		s.logger.Warn("render invalidation failed, relying on TTL expiry",
			slog.String("path", PublicPath),
			slog.String("error", err.Error()),
		)
	}
}

func record[T any](e *T) *model.OrderedRecord {
	return any(e).(interface{ Record() *model.OrderedRecord }).Record()
}
