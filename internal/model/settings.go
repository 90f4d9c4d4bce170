package model

import (
	"encoding/json"
	"time"
)

// SettingsID is the fixed primary key of the site settings singleton.
const SettingsID = "main"

// FocusArea is one entry of the ordered "focus areas" list on the about section.
type FocusArea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stat is one entry of the ordered stat tiles list on the hero section.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SiteSettings is the singleton content record driving the public page copy.
// At most one row exists; the repository lazily creates it with defaults on
// first read.
type SiteSettings struct {
	ID string `json:"id"`

	HeroTitle       string `json:"heroTitle"`
	HeroSubtitle    string `json:"heroSubtitle"`
	HeroDescription string `json:"heroDescription"`
	HeroLocation    string `json:"heroLocation"`

	AboutTitle string `json:"aboutTitle"`
	AboutText  string `json:"aboutText"`

	// FocusAreas and Stats are ordered lists of structured records stored
	// as JSON columns. Corrupted blobs decode to empty lists.
	FocusAreas []FocusArea `json:"focusAreas"`
	Stats      []Stat      `json:"stats"`

	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`
	Calendly string `json:"calendly"`

	SkillsTitle           string `json:"skillsTitle"`
	SkillsDescription     string `json:"skillsDescription"`
	ExperienceTitle       string `json:"experienceTitle"`
	ExperienceDescription string `json:"experienceDescription"`
	ProjectsTitle         string `json:"projectsTitle"`
	ProjectsDescription   string `json:"projectsDescription"`
	EducationTitle        string `json:"educationTitle"`
	EducationDescription  string `json:"educationDescription"`
	ContactTitle          string `json:"contactTitle"`
	ContactDescription    string `json:"contactDescription"`

	ResumeURL string `json:"resumeUrl"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultSettings returns the record created on first read when no
// settings row exists yet.
func DefaultSettings() *SiteSettings {
	return &SiteSettings{
		ID:              SettingsID,
		HeroTitle:       "Your Name",
		HeroSubtitle:    "What you do",
		ProjectsTitle:   "Projects",
		SkillsTitle:     "Skills",
		ExperienceTitle: "Experience",
		EducationTitle:  "Education",
		ContactTitle:    "Get in Touch",
		FocusAreas:      []FocusArea{},
		Stats:           []Stat{},
	}
}

// DecodeFocusAreas parses a raw JSON column into the focus areas list,
// falling back to empty on any decode failure.
func DecodeFocusAreas(raw []byte) []FocusArea {
	var areas []FocusArea
	if len(raw) == 0 || json.Unmarshal(raw, &areas) != nil || areas == nil {
		return []FocusArea{}
	}
	return areas
}

// DecodeStats parses a raw JSON column into the stat tiles list,
// falling back to empty on any decode failure.
func DecodeStats(raw []byte) []Stat {
	var stats []Stat
	if len(raw) == 0 || json.Unmarshal(raw, &stats) != nil || stats == nil {
		return []Stat{}
	}
	return stats
}
