package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"

	"github.com/nordfolio/nordfolio/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 771177

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// resetSchema reapplies one migration pair, dropping and recreating its tables.
func resetSchema(ctx context.Context, pool *pgxpool.Pool, name string) error {
	root, err := ProjectRoot()
	if err != nil {
		return err
	}

	downPath := filepath.Join(root, "migrations", name+".down.sql")
	upPath := filepath.Join(root, "migrations", name+".up.sql")

	downSQL, err := os.ReadFile(downPath)
	if err != nil {
		return fmt.Errorf("read %s down migration: %w", name, err)
	}
	if _, err := pool.Exec(ctx, string(downSQL)); err != nil {
		return fmt.Errorf("apply %s down migration: %w", name, err)
	}

	upSQL, err := os.ReadFile(upPath)
	if err != nil {
		return fmt.Errorf("read %s up migration: %w", name, err)
	}
	if _, err := pool.Exec(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("apply %s up migration: %w", name, err)
	}

	return nil
}

// ResetUsersSchema drops and recreates the users schema for tests.
func ResetUsersSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000001_users")
}

// ResetSettingsSchema drops and recreates the site_settings schema for tests.
func ResetSettingsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000002_settings")
}

// ResetContentSchema drops and recreates the six content tables for tests.
func ResetContentSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000003_content")
}

// ResetInboxSchema drops and recreates the contact_submissions schema for tests.
func ResetInboxSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000004_inbox")
}

// ResetAnalyticsSchema drops and recreates the analytics_events schema for tests.
func ResetAnalyticsSchema(ctx context.Context, pool *pgxpool.Pool) error {
	return resetSchema(ctx, pool, "000005_analytics")
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestProject creates a project with sensible defaults.
func NewTestProject(t testing.TB, title string) *model.Project {
	t.Helper()
	now := time.Now().UTC()
	p := &model.Project{
		Title:       title,
		Description: "Description of " + title,
		Role:        "Lead",
		Tags:        model.StringList{"go", "postgres"},
		Size:        "medium",
	}
	p.ID = ulid.Make().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p
}

// NewTestExperience creates an experience entry with sensible defaults.
func NewTestExperience(t testing.TB, title string) *model.Experience {
	t.Helper()
	now := time.Now().UTC()
	e := &model.Experience{
		Title:        title,
		Company:      "Acme",
		Period:       "2020 - 2023",
		Achievements: model.StringList{"shipped things"},
	}
	e.ID = ulid.Make().String()
	e.CreatedAt = now
	e.UpdatedAt = now
	return e
}

// NewTestSubmission creates a contact submission with sensible defaults.
func NewTestSubmission(t testing.TB, email string) *model.ContactSubmission {
	t.Helper()
	return &model.ContactSubmission{
		ID:        ulid.Make().String(),
		Name:      "Test Sender",
		Email:     email,
		Subject:   "Hello",
		Message:   "This is a test message body.",
		CreatedAt: time.Now().UTC(),
	}
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
