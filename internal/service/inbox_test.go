package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nordfolio/nordfolio/internal/model"
	"github.com/nordfolio/nordfolio/internal/repository"
)

type fakeInboxStore struct {
	submissions map[string]*model.ContactSubmission
	createErr   error
}

func newFakeInboxStore() *fakeInboxStore {
	return &fakeInboxStore{submissions: make(map[string]*model.ContactSubmission)}
}

func (f *fakeInboxStore) CreateSubmission(_ context.Context, s *model.ContactSubmission) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.submissions[s.ID] = s
	return nil
}

func (f *fakeInboxStore) ListSubmissions(_ context.Context, archived bool) ([]*model.ContactSubmission, error) {
	var out []*model.ContactSubmission
	for _, s := range f.submissions {
		if s.Archived == archived {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeInboxStore) GetSubmission(_ context.Context, id string) (*model.ContactSubmission, error) {
	s, ok := f.submissions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeInboxStore) UpdateSubmissionFlags(_ context.Context, id string, read, archived bool) error {
	s, ok := f.submissions[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.Read = read
	s.Archived = archived
	return nil
}

func (f *fakeInboxStore) DeleteSubmission(_ context.Context, id string) error {
	if _, ok := f.submissions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.submissions, id)
	return nil
}

func validSubmitInput() SubmitInput {
	return SubmitInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I would like to talk about a project.",
	}
}

func TestInboxSubmit_Valid(t *testing.T) {
	t.Parallel()

	store := newFakeInboxStore()
	svc := NewInbox(store)

	submission, err := svc.Submit(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if submission.ID == "" {
		t.Error("Submit should assign an ID")
	}
	if submission.CreatedAt.IsZero() {
		t.Error("Submit should stamp CreatedAt")
	}
	if submission.Read || submission.Archived {
		t.Error("new submissions start unread and unarchived")
	}
	if len(store.submissions) != 1 {
		t.Error("submission should be persisted")
	}
}

func TestInboxSubmit_TrimsFields(t *testing.T) {
	t.Parallel()

	svc := NewInbox(newFakeInboxStore())

	input := validSubmitInput()
	input.Name = "  Jane Doe  "
	input.Email = " jane@example.com "

	submission, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if submission.Name != "Jane Doe" || submission.Email != "jane@example.com" {
		t.Errorf("fields should be trimmed, got %q / %q", submission.Name, submission.Email)
	}
}

func TestInboxSubmit_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*SubmitInput)
		wantField string
	}{
		{"short name", func(in *SubmitInput) { in.Name = "J" }, "name"},
		{"blank name", func(in *SubmitInput) { in.Name = "   " }, "name"},
		{"bad email", func(in *SubmitInput) { in.Email = "not-an-email" }, "email"},
		{"empty email", func(in *SubmitInput) { in.Email = "" }, "email"},
		{"short message", func(in *SubmitInput) { in.Message = "hi" }, "message"},
		{"huge message", func(in *SubmitInput) { in.Message = strings.Repeat("x", 5001) }, "message"},
		{"huge subject", func(in *SubmitInput) { in.Subject = strings.Repeat("x", 5001) }, "subject"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := newFakeInboxStore()
			svc := NewInbox(store)

			input := validSubmitInput()
			tt.mutate(&input)

			_, err := svc.Submit(context.Background(), input)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got: %v", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("expected problem on field %q, got %v", tt.wantField, verr.Fields)
			}
			if len(store.submissions) != 0 {
				t.Error("invalid submission should not be persisted")
			}
		})
	}
}

func TestInboxSetFlags_PartialUpdate(t *testing.T) {
	t.Parallel()

	store := newFakeInboxStore()
	svc := NewInbox(store)
	ctx := context.Background()

	created, err := svc.Submit(ctx, validSubmitInput())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	read := true
	updated, err := svc.SetFlags(ctx, created.ID, &read, nil)
	if err != nil {
		t.Fatalf("SetFlags failed: %v", err)
	}
	if !updated.Read || updated.Archived {
		t.Errorf("only the read flag should change, got read=%v archived=%v", updated.Read, updated.Archived)
	}

	archived := true
	updated, err = svc.SetFlags(ctx, created.ID, nil, &archived)
	if err != nil {
		t.Fatalf("SetFlags failed: %v", err)
	}
	if !updated.Read || !updated.Archived {
		t.Error("earlier read flag should survive an archived-only update")
	}
}

func TestInboxSetFlags_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewInbox(newFakeInboxStore())

	read := true
	if _, err := svc.SetFlags(context.Background(), "missing", &read, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestInboxDelete(t *testing.T) {
	t.Parallel()

	store := newFakeInboxStore()
	svc := NewInbox(store)
	ctx := context.Background()

	created, err := svc.Submit(ctx, validSubmitInput())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got: %v", err)
	}
}
