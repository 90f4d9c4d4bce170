package service

import (
	"context"
	"log/slog"

	"github.com/nordfolio/nordfolio/internal/model"
)

// SettingsStore is the persistence contract for the settings singleton.
type SettingsStore interface {
	EnsureSettings(ctx context.Context) (*model.SiteSettings, error)
	UpdateSettings(ctx context.Context, s *model.SiteSettings) error
}

// Settings handles the site settings singleton. Reads lazily create the
// row with defaults; updates invalidate the public rendering.
type Settings struct {
	store       SettingsStore
	invalidator Invalidator
	logger      *slog.Logger
}

// NewSettings creates the settings service.
func NewSettings(store SettingsStore, invalidator Invalidator, logger *slog.Logger) *Settings {
	return &Settings{
		store:       store,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Get returns the settings singleton, creating it with defaults if absent.
func (s *Settings) Get(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := s.store.EnsureSettings(ctx)
	if err != nil {
		return nil, wrapStoreErr("ensure settings", err)
	}
	return settings, nil
}

// Update rewrites the singleton and marks the public rendering stale.
func (s *Settings) Update(ctx context.Context, settings *model.SiteSettings) (*model.SiteSettings, error) {
	if err := s.store.UpdateSettings(ctx, settings); err != nil {
		return nil, wrapStoreErr("update settings", err)
	}

	// Write committed; invalidation is best-effort with the TTL as backstop.
	if err := s.invalidator.InvalidateRender(ctx, PublicPath); err != nil {
		s.logger.Warn("render invalidation failed, relying on TTL expiry",
			slog.String("path", PublicPath),
			slog.String("error", err.Error()),
		)
	}

	return settings, nil
}
