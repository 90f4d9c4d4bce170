//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/nordfolio/nordfolio/internal/model"
	"github.com/nordfolio/nordfolio/internal/testutil"
)

func newUserTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetUsersSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset users schema: %v", err)
	}

	return ctx, repo
}

func newTestUser(email string) *model.User {
	return &model.User{
		ID:           ulid.Make().String(),
		Email:        email,
		PasswordHash: "$2a$12$placeholderplaceholderplaceplaceholderplacehold",
		DisplayName:  "Test Admin",
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestIntegrationUser_CreateAndGet(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	user := newTestUser("admin@example.com")
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	got, err := repo.GetUserByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.ID != user.ID || got.PasswordHash != user.PasswordHash {
		t.Errorf("GetUserByEmail = %+v, want stored user", got)
	}

	if _, err := repo.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown email should be ErrNotFound, got: %v", err)
	}
}

func TestIntegrationUser_DuplicateEmail(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	if err := repo.CreateUser(ctx, newTestUser("admin@example.com")); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	err := repo.CreateUser(ctx, newTestUser("admin@example.com"))
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email should be ErrEmailExists, got: %v", err)
	}
}

func TestIntegrationUser_UpsertResetsCredentials(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	original := newTestUser("admin@example.com")
	if err := repo.UpsertUser(ctx, original); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	// A second upsert with the same email replaces the credentials; this
	// is how a lost admin password is reset.
	replacement := newTestUser("admin@example.com")
	replacement.PasswordHash = "$2a$12$differenthashdifferenthashdifferenthashdiffe"
	replacement.DisplayName = "Renamed Admin"
	if err := repo.UpsertUser(ctx, replacement); err != nil {
		t.Fatalf("second UpsertUser failed: %v", err)
	}

	got, err := repo.GetUserByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.PasswordHash != replacement.PasswordHash {
		t.Error("upsert should replace the password hash")
	}
	if got.DisplayName != "Renamed Admin" {
		t.Error("upsert should replace the display name")
	}
}
