package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/nordfolio/nordfolio/internal/cache"
	"github.com/nordfolio/nordfolio/internal/model"
)

// PortfolioPayload is the complete public rendering of the site: the
// settings singleton plus every content collection in display order.
type PortfolioPayload struct {
	Settings       *model.SiteSettings    `json:"settings"`
	Projects       []*model.Project       `json:"projects"`
	Experiences    []*model.Experience    `json:"experiences"`
	Education      []*model.Education     `json:"education"`
	Certifications []*model.Certification `json:"certifications"`
	Achievements   []*model.Achievement   `json:"achievements"`
	SkillGroups    []*model.SkillCategory `json:"skillCategories"`
	GeneratedAt    time.Time              `json:"generatedAt"`
}

// Portfolio serves the public read path. Anonymous requests hit the render
// cache first; only a miss (TTL expiry or explicit invalidation) touches
// the database. The cache is a disposable derived artifact - it can always
// be rebuilt, so no locking is needed, just the staleness bound.
type Portfolio struct {
	settings       *Settings
	projects       *Content[model.Project]
	experiences    *Content[model.Experience]
	education      *Content[model.Education]
	certifications *Content[model.Certification]
	achievements   *Content[model.Achievement]
	skillGroups    *Content[model.SkillCategory]

	renders RenderCache
	ttl     time.Duration
	logger  *slog.Logger
}

// NewPortfolio creates the public read service.
func NewPortfolio(
	settings *Settings,
	projects *Content[model.Project],
	experiences *Content[model.Experience],
	education *Content[model.Education],
	certifications *Content[model.Certification],
	achievements *Content[model.Achievement],
	skillGroups *Content[model.SkillCategory],
	renders RenderCache,
	ttl time.Duration,
	logger *slog.Logger,
) *Portfolio {
	return &Portfolio{
		settings:       settings,
		projects:       projects,
		experiences:    experiences,
		education:      education,
		certifications: certifications,
		achievements:   achievements,
		skillGroups:    skillGroups,
		renders:        renders,
		ttl:            ttl,
		logger:         logger,
	}
}

// Render returns the serialized public payload and whether it came from
// the cache. A cache read failure degrades to a fresh rebuild; a cache
// write failure degrades to serving uncached.
func (p *Portfolio) Render(ctx context.Context) ([]byte, bool, error) {
	payload, err := p.renders.GetRender(ctx, PublicPath)
	if err == nil {
		return payload, true, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		p.logger.Warn("render cache read failed", slog.String("error", err.Error()))
	}

	payload, err = p.rebuild(ctx)
	if err != nil {
		return nil, false, err
	}

	if err := p.renders.SetRender(ctx, PublicPath, payload, p.ttl); err != nil {
		p.logger.Warn("render cache write failed", slog.String("error", err.Error()))
	}

	return payload, false, nil
}

// rebuild recomputes the public payload from the content store.
func (p *Portfolio) rebuild(ctx context.Context) ([]byte, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := p.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	experiences, err := p.experiences.List(ctx)
	if err != nil {
		return nil, err
	}
	education, err := p.education.List(ctx)
	if err != nil {
		return nil, err
	}
	certifications, err := p.certifications.List(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := p.achievements.List(ctx)
	if err != nil {
		return nil, err
	}
	skillGroups, err := p.skillGroups.List(ctx)
	if err != nil {
		return nil, err
	}

	payload := &PortfolioPayload{
		Settings:       settings,
		Projects:       projects,
		Experiences:    experiences,
		Education:      education,
		Certifications: certifications,
		Achievements:   achievements,
		SkillGroups:    skillGroups,
		GeneratedAt:    time.Now().UTC(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, wrapStoreErr("marshal portfolio payload", err)
	}

	return raw, nil
}
