// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// PublicPath is the cached public rendering affected by content mutations.
const PublicPath = "/"

// Service errors.
var (
	ErrNotFound = errors.New("record not found")
)

// ValidationError carries field-level detail for a rejected mutation.
// Surfaced as 400 to the admin caller only; the public page never sees it.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Invalidator marks a cached public rendering stale. Implemented by the
// redis render cache; faked in tests.
type Invalidator interface {
	InvalidateRender(ctx context.Context, path string) error
}

// RenderCache is the full cached-rendering contract used by the public
// read path: TTL-bounded storage plus explicit invalidation.
type RenderCache interface {
	Invalidator
	GetRender(ctx context.Context, path string) ([]byte, error)
	SetRender(ctx context.Context, path string, payload []byte, ttl time.Duration) error
}

// generateULID creates a new ULID string for entity IDs. ULIDs sort by
// creation time, which doubles as the stable tie-break for equal sort
// orders within a collection.
func generateULID() string {
	return ulid.Make().String()
}

func wrapStoreErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
