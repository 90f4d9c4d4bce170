package service

import (
	"net/mail"
	"strings"

	"github.com/nordfolio/nordfolio/internal/model"
)

// Per-entity validation rules. Only presence and basic shape are checked;
// content is trusted admin input beyond that.

// ValidateProject checks required project fields. An omitted size is
// normalized to the default; the column CHECK only admits the three
// known values, so the blank must never reach the insert.
func ValidateProject(p *model.Project) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(p.Title) == "" {
		problems["title"] = "title is required"
	}
	if strings.TrimSpace(p.Description) == "" {
		problems["description"] = "description is required"
	}
	switch p.Size {
	case "":
		p.Size = model.ProjectSizeDefault
	case model.ProjectSizeSmall, model.ProjectSizeMedium, model.ProjectSizeLarge:
	default:
		problems["size"] = "size must be small, medium, or large"
	}
	return problems
}

// ValidateExperience checks required experience fields.
func ValidateExperience(e *model.Experience) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(e.Title) == "" {
		problems["title"] = "title is required"
	}
	if strings.TrimSpace(e.Company) == "" {
		problems["company"] = "company is required"
	}
	if strings.TrimSpace(e.Period) == "" {
		problems["period"] = "period is required"
	}
	return problems
}

// ValidateEducation checks required education fields.
func ValidateEducation(e *model.Education) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(e.Degree) == "" {
		problems["degree"] = "degree is required"
	}
	if strings.TrimSpace(e.Institution) == "" {
		problems["institution"] = "institution is required"
	}
	return problems
}

// ValidateCertification checks required certification fields.
func ValidateCertification(c *model.Certification) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(c.Name) == "" {
		problems["name"] = "name is required"
	}
	if strings.TrimSpace(c.Issuer) == "" {
		problems["issuer"] = "issuer is required"
	}
	return problems
}

// ValidateAchievement checks required achievement fields.
func ValidateAchievement(a *model.Achievement) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(a.Text) == "" {
		problems["text"] = "text is required"
	}
	return problems
}

// ValidateSkillCategory checks required skill category fields.
func ValidateSkillCategory(s *model.SkillCategory) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(s.Title) == "" {
		problems["title"] = "title is required"
	}
	return problems
}

// validEmail reports whether the address parses per RFC 5322.
func validEmail(address string) bool {
	_, err := mail.ParseAddress(address)
	return err == nil
}
