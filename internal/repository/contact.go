package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nordfolio/nordfolio/internal/model"
)

// CreateSubmission appends a contact form submission to the inbox.
func (r *Repository) CreateSubmission(ctx context.Context, s *model.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, subject, message, read, archived, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.Subject, s.Message, s.Read, s.Archived, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}

	return nil
}

// ListSubmissions returns inbox records filtered by the archived flag,
// newest first.
func (r *Repository) ListSubmissions(ctx context.Context, archived bool) ([]*model.ContactSubmission, error) {
	query := `
		SELECT id, name, email, subject, message, read, archived, created_at
		FROM contact_submissions
		WHERE archived = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]*model.ContactSubmission, 0)
	for rows.Next() {
		s := &model.ContactSubmission{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Read, &s.Archived, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submissions: %w", err)
	}

	return submissions, nil
}

// GetSubmission retrieves one inbox record by id.
func (r *Repository) GetSubmission(ctx context.Context, id string) (*model.ContactSubmission, error) {
	query := `
		SELECT id, name, email, subject, message, read, archived, created_at
		FROM contact_submissions
		WHERE id = $1
	`

	s := &model.ContactSubmission{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.Read, &s.Archived, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return s, nil
}

// UpdateSubmissionFlags flips the read/archived flags on an inbox record.
// Submission content itself is append-only and never edited.
func (r *Repository) UpdateSubmissionFlags(ctx context.Context, id string, read, archived bool) error {
	query := `
		UPDATE contact_submissions
		SET read = $2, archived = $3
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, read, archived)
	if err != nil {
		return fmt.Errorf("failed to update submission flags: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteSubmission removes an inbox record.
func (r *Repository) DeleteSubmission(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM contact_submissions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
