package repository

import (
	"context"
	"fmt"

	"github.com/nordfolio/nordfolio/internal/model"
)

// CreateEvent appends an analytics event. Write-once; there is no update path.
func (r *Repository) CreateEvent(ctx context.Context, e *model.AnalyticsEvent) error {
	query := `
		INSERT INTO analytics_events (id, page, event, data, ip, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.Page, e.Event, e.Data, e.IP, e.UserAgent, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// ListEvents returns the most recent analytics events, newest first.
func (r *Repository) ListEvents(ctx context.Context, limit int) ([]*model.AnalyticsEvent, error) {
	query := `
		SELECT id, page, event, data, ip, user_agent, created_at
		FROM analytics_events
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*model.AnalyticsEvent, 0)
	for rows.Next() {
		e := &model.AnalyticsEvent{}
		if err := rows.Scan(&e.ID, &e.Page, &e.Event, &e.Data, &e.IP, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
