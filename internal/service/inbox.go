package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nordfolio/nordfolio/internal/model"
	"github.com/nordfolio/nordfolio/internal/repository"
)

// Contact form limits.
const (
	minNameLen    = 2
	minMessageLen = 10
	maxFieldLen   = 5000
)

// InboxStore is the persistence contract for contact submissions.
type InboxStore interface {
	CreateSubmission(ctx context.Context, s *model.ContactSubmission) error
	ListSubmissions(ctx context.Context, archived bool) ([]*model.ContactSubmission, error)
	GetSubmission(ctx context.Context, id string) (*model.ContactSubmission, error)
	UpdateSubmissionFlags(ctx context.Context, id string, read, archived bool) error
	DeleteSubmission(ctx context.Context, id string) error
}

// Inbox handles the public contact form and the admin inbox. Inbox
// mutations never touch the render cache; submissions are not part of
// the public page.
type Inbox struct {
	store InboxStore
}

// NewInbox creates the inbox service.
func NewInbox(store InboxStore) *Inbox {
	return &Inbox{store: store}
}

// SubmitInput is the public contact form payload.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit validates and appends a contact submission.
func (s *Inbox) Submit(ctx context.Context, input SubmitInput) (*model.ContactSubmission, error) {
	problems := map[string]string{}
	if len(strings.TrimSpace(input.Name)) < minNameLen {
		problems["name"] = "name must be at least 2 characters"
	}
	if !validEmail(input.Email) {
		problems["email"] = "invalid email address"
	}
	if len(strings.TrimSpace(input.Message)) < minMessageLen {
		problems["message"] = "message must be at least 10 characters"
	}
	if len(input.Message) > maxFieldLen {
		problems["message"] = "message is too long"
	}
	if len(input.Subject) > maxFieldLen {
		problems["subject"] = "subject is too long"
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}

	submission := &model.ContactSubmission{
		ID:        generateULID(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Subject:   strings.TrimSpace(input.Subject),
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateSubmission(ctx, submission); err != nil {
		return nil, wrapStoreErr("create submission", err)
	}

	return submission, nil
}

// List returns inbox records filtered by the archived flag.
func (s *Inbox) List(ctx context.Context, archived bool) ([]*model.ContactSubmission, error) {
	submissions, err := s.store.ListSubmissions(ctx, archived)
	if err != nil {
		return nil, wrapStoreErr("list submissions", err)
	}
	return submissions, nil
}

// SetFlags flips the read/archived flags on a submission. Nil inputs
// leave the corresponding flag untouched.
func (s *Inbox) SetFlags(ctx context.Context, id string, read, archived *bool) (*model.ContactSubmission, error) {
	submission, err := s.store.GetSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStoreErr("get submission", err)
	}

	if read != nil {
		submission.Read = *read
	}
	if archived != nil {
		submission.Archived = *archived
	}

	if err := s.store.UpdateSubmissionFlags(ctx, id, submission.Read, submission.Archived); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, wrapStoreErr("update submission flags", err)
	}

	return submission, nil
}

// Delete removes a submission.
func (s *Inbox) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteSubmission(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return wrapStoreErr("delete submission", err)
	}
	return nil
}
