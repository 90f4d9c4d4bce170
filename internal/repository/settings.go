package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nordfolio/nordfolio/internal/model"
)

const settingsColumns = `
	id,
	hero_title, hero_subtitle, hero_description, hero_location,
	about_title, about_text,
	focus_areas, stats,
	email, phone, linkedin, github, twitter, calendly,
	skills_title, skills_description,
	experience_title, experience_description,
	projects_title, projects_description,
	education_title, education_description,
	contact_title, contact_description,
	resume_url, updated_at
`

// EnsureSettings returns the settings singleton, creating it with defaults
// on first read. This is the only place the lazy create lives; callers get
// a row back unconditionally.
func (r *Repository) EnsureSettings(ctx context.Context) (*model.SiteSettings, error) {
	settings, err := r.getSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	defaults := model.DefaultSettings()
	defaults.UpdatedAt = time.Now().UTC()
	if err := r.insertSettings(ctx, defaults); err != nil {
		// A concurrent first read may have created the row already.
		if isUniqueViolation(err) {
			return r.getSettings(ctx)
		}
		return nil, err
	}

	return defaults, nil
}

// UpdateSettings rewrites the singleton row. The row is ensured first so
// an update against a fresh database never 404s.
func (r *Repository) UpdateSettings(ctx context.Context, s *model.SiteSettings) error {
	if _, err := r.EnsureSettings(ctx); err != nil {
		return err
	}

	s.ID = model.SettingsID
	s.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE site_settings
		SET hero_title = $2, hero_subtitle = $3, hero_description = $4, hero_location = $5,
		    about_title = $6, about_text = $7,
		    focus_areas = $8, stats = $9,
		    email = $10, phone = $11, linkedin = $12, github = $13, twitter = $14, calendly = $15,
		    skills_title = $16, skills_description = $17,
		    experience_title = $18, experience_description = $19,
		    projects_title = $20, projects_description = $21,
		    education_title = $22, education_description = $23,
		    contact_title = $24, contact_description = $25,
		    resume_url = $26, updated_at = $27
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, settingsArgs(s)...)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}

func (r *Repository) getSettings(ctx context.Context) (*model.SiteSettings, error) {
	query := "SELECT " + settingsColumns + " FROM site_settings WHERE id = $1"

	s := &model.SiteSettings{}
	var focusAreas, stats []byte

	err := r.pool.QueryRow(ctx, query, model.SettingsID).Scan(
		&s.ID,
		&s.HeroTitle, &s.HeroSubtitle, &s.HeroDescription, &s.HeroLocation,
		&s.AboutTitle, &s.AboutText,
		&focusAreas, &stats,
		&s.Email, &s.Phone, &s.LinkedIn, &s.GitHub, &s.Twitter, &s.Calendly,
		&s.SkillsTitle, &s.SkillsDescription,
		&s.ExperienceTitle, &s.ExperienceDescription,
		&s.ProjectsTitle, &s.ProjectsDescription,
		&s.EducationTitle, &s.EducationDescription,
		&s.ContactTitle, &s.ContactDescription,
		&s.ResumeURL, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	// Corrupted list blobs degrade to empty lists, never to an error.
	s.FocusAreas = model.DecodeFocusAreas(focusAreas)
	s.Stats = model.DecodeStats(stats)

	return s, nil
}

func (r *Repository) insertSettings(ctx context.Context, s *model.SiteSettings) error {
	query := `
		INSERT INTO site_settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
	`

	if _, err := r.pool.Exec(ctx, query, settingsArgs(s)...); err != nil {
		if isUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("failed to insert settings: %w", err)
	}

	return nil
}

func settingsArgs(s *model.SiteSettings) []any {
	return []any{
		model.SettingsID,
		s.HeroTitle, s.HeroSubtitle, s.HeroDescription, s.HeroLocation,
		s.AboutTitle, s.AboutText,
		encodeJSON(s.FocusAreas), encodeJSON(s.Stats),
		s.Email, s.Phone, s.LinkedIn, s.GitHub, s.Twitter, s.Calendly,
		s.SkillsTitle, s.SkillsDescription,
		s.ExperienceTitle, s.ExperienceDescription,
		s.ProjectsTitle, s.ProjectsDescription,
		s.EducationTitle, s.EducationDescription,
		s.ContactTitle, s.ContactDescription,
		s.ResumeURL, s.UpdatedAt,
	}
}

func encodeJSON(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		return []byte("[]")
	}
	return raw
}
