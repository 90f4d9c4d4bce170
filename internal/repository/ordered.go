package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordfolio/nordfolio/internal/model"
)

// Schema describes how one ordered entity type maps onto its table.
// Columns excludes the shared id, sort_order, created_at, and updated_at
// columns, which the generic repository manages itself.
type Schema[T any] struct {
	Table   string
	Columns []string
	// Values returns insert/update arguments matching Columns.
	Values func(e *T) []any
	// Scan returns scan destinations matching Columns.
	Scan func(e *T) []any
}

// Ordered is a generic repository for one ordered content collection.
// All six content entity types share this implementation; each contributes
// only its Schema descriptor.
type Ordered[T any] struct {
	pool   *pgxpool.Pool
	schema Schema[T]

	selectSQL string
	insertSQL string
	updateSQL string
}

// NewOrdered creates a repository for one entity type.
func NewOrdered[T any](r *Repository, schema Schema[T]) *Ordered[T] {
	cols := strings.Join(schema.Columns, ", ")

	placeholders := make([]string, 0, len(schema.Columns)+4)
	for i := 0; i < len(schema.Columns)+4; i++ {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}

	assignments := make([]string, 0, len(schema.Columns)+2)
	for i, col := range schema.Columns {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+2))
	}
	assignments = append(assignments,
		fmt.Sprintf("sort_order = $%d", len(schema.Columns)+2),
		fmt.Sprintf("updated_at = $%d", len(schema.Columns)+3),
	)

	return &Ordered[T]{
		pool:   r.pool,
		schema: schema,
		selectSQL: fmt.Sprintf(
			"SELECT id, %s, sort_order, created_at, updated_at FROM %s",
			cols, schema.Table,
		),
		insertSQL: fmt.Sprintf(
			"INSERT INTO %s (id, %s, sort_order, created_at, updated_at) VALUES (%s)",
			schema.Table, cols, strings.Join(placeholders, ", "),
		),
		updateSQL: fmt.Sprintf(
			"UPDATE %s SET %s WHERE id = $1",
			schema.Table, strings.Join(assignments, ", "),
		),
	}
}

type scannable interface {
	Scan(dest ...any) error
}

func (o *Ordered[T]) scanEntity(row scannable) (*T, error) {
	e := new(T)
	rec := any(e).(interface{ Record() *model.OrderedRecord }).Record()

	dest := make([]any, 0, len(o.schema.Columns)+4)
	dest = append(dest, &rec.ID)
	dest = append(dest, o.schema.Scan(e)...)
	dest = append(dest, &rec.SortOrder, &rec.CreatedAt, &rec.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	return e, nil
}

func record[T any](e *T) *model.OrderedRecord {
	return any(e).(interface{ Record() *model.OrderedRecord }).Record()
}

// Create inserts a new entity.
func (o *Ordered[T]) Create(ctx context.Context, e *T) error {
	rec := record(e)

	args := make([]any, 0, len(o.schema.Columns)+4)
	args = append(args, rec.ID)
	args = append(args, o.schema.Values(e)...)
	args = append(args, rec.SortOrder, rec.CreatedAt, rec.UpdatedAt)

	if _, err := o.pool.Exec(ctx, o.insertSQL, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", o.schema.Table, err)
	}

	return nil
}

// Get retrieves one entity by id. Returns ErrNotFound if absent.
func (o *Ordered[T]) Get(ctx context.Context, id string) (*T, error) {
	row := o.pool.QueryRow(ctx, o.selectSQL+" WHERE id = $1", id)

	e, err := o.scanEntity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get from %s: %w", o.schema.Table, err)
	}

	return e, nil
}

// List returns the whole collection in display order. Sorting is ascending
// by sort_order with creation sequence breaking ties, so duplicate and
// gapped sort values read back deterministically.
func (o *Ordered[T]) List(ctx context.Context) ([]*T, error) {
	rows, err := o.pool.Query(ctx, o.selectSQL+" ORDER BY sort_order ASC, created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", o.schema.Table, err)
	}
	defer rows.Close()

	entities := make([]*T, 0)
	for rows.Next() {
		e, err := o.scanEntity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", o.schema.Table, err)
		}
		entities = append(entities, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", o.schema.Table, err)
	}

	return entities, nil
}

// Update rewrites an entity's domain fields and sort order.
// Returns ErrNotFound if the id does not exist.
func (o *Ordered[T]) Update(ctx context.Context, e *T) error {
	rec := record(e)

	args := make([]any, 0, len(o.schema.Columns)+3)
	args = append(args, rec.ID)
	args = append(args, o.schema.Values(e)...)
	args = append(args, rec.SortOrder, rec.UpdatedAt)

	result, err := o.pool.Exec(ctx, o.updateSQL, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", o.schema.Table, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an entity. Remaining rows keep their sort values; gaps
// are permitted and never compacted.
func (o *Ordered[T]) Delete(ctx context.Context, id string) error {
	result, err := o.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", o.schema.Table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", o.schema.Table, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the collection size, used to assign the default sort order
// for appended entities.
func (o *Ordered[T]) Count(ctx context.Context) (int, error) {
	var count int
	err := o.pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", o.schema.Table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", o.schema.Table, err)
	}

	return count, nil
}
