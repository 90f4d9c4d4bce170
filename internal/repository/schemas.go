package repository

import "github.com/nordfolio/nordfolio/internal/model"

// Schema descriptors for the six ordered content collections.
// Values and Scan must list fields in Columns order.

// ProjectSchema maps model.Project onto the projects table.
var ProjectSchema = Schema[model.Project]{
	Table: "projects",
	Columns: []string{
		"title", "description", "role", "challenges", "tags",
		"size", "demo_url", "github_url", "featured",
	},
	Values: func(p *model.Project) []any {
		return []any{
			p.Title, p.Description, p.Role, p.Challenges, p.Tags,
			p.Size, p.DemoURL, p.GitHubURL, p.Featured,
		}
	},
	Scan: func(p *model.Project) []any {
		return []any{
			&p.Title, &p.Description, &p.Role, &p.Challenges, &p.Tags,
			&p.Size, &p.DemoURL, &p.GitHubURL, &p.Featured,
		}
	},
}

// ExperienceSchema maps model.Experience onto the experiences table.
var ExperienceSchema = Schema[model.Experience]{
	Table: "experiences",
	Columns: []string{
		"title", "company", "company_url", "location", "period",
		"description", "achievements",
	},
	Values: func(e *model.Experience) []any {
		return []any{
			e.Title, e.Company, e.CompanyURL, e.Location, e.Period,
			e.Description, e.Achievements,
		}
	},
	Scan: func(e *model.Experience) []any {
		return []any{
			&e.Title, &e.Company, &e.CompanyURL, &e.Location, &e.Period,
			&e.Description, &e.Achievements,
		}
	},
}

// EducationSchema maps model.Education onto the education table.
var EducationSchema = Schema[model.Education]{
	Table: "education",
	Columns: []string{
		"degree", "field", "institution", "year", "honors", "coursework",
	},
	Values: func(e *model.Education) []any {
		return []any{e.Degree, e.Field, e.Institution, e.Year, e.Honors, e.Coursework}
	},
	Scan: func(e *model.Education) []any {
		return []any{&e.Degree, &e.Field, &e.Institution, &e.Year, &e.Honors, &e.Coursework}
	},
}

// CertificationSchema maps model.Certification onto the certifications table.
var CertificationSchema = Schema[model.Certification]{
	Table:   "certifications",
	Columns: []string{"name", "issuer", "year"},
	Values: func(c *model.Certification) []any {
		return []any{c.Name, c.Issuer, c.Year}
	},
	Scan: func(c *model.Certification) []any {
		return []any{&c.Name, &c.Issuer, &c.Year}
	},
}

// AchievementSchema maps model.Achievement onto the achievements table.
var AchievementSchema = Schema[model.Achievement]{
	Table:   "achievements",
	Columns: []string{"text"},
	Values: func(a *model.Achievement) []any {
		return []any{a.Text}
	},
	Scan: func(a *model.Achievement) []any {
		return []any{&a.Text}
	},
}

// SkillCategorySchema maps model.SkillCategory onto the skill_categories table.
var SkillCategorySchema = Schema[model.SkillCategory]{
	Table:   "skill_categories",
	Columns: []string{"title", "color", "skills"},
	Values: func(s *model.SkillCategory) []any {
		return []any{s.Title, s.Color, s.Skills}
	},
	Scan: func(s *model.SkillCategory) []any {
		return []any{&s.Title, &s.Color, &s.Skills}
	},
}
