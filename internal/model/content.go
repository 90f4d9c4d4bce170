package model

import (
	"database/sql/driver"
	"time"
)

// Scan implements sql.Scanner so list columns decode through the
// empty-on-failure contract instead of surfacing a scan error.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*l = DecodeStringList(v)
	case string:
		*l = DecodeStringList([]byte(v))
	default:
		*l = StringList{}
	}
	return nil
}

// Value implements driver.Valuer for writing list columns.
func (l StringList) Value() (driver.Value, error) {
	return l.Encode(), nil
}

// OrderedRecord holds the fields shared by every ordered content entity.
// Collections are displayed ascending by SortOrder; ties break by creation
// sequence (CreatedAt, then the ULID id), so repeated reads are stable.
// SortOrder is neither unique nor contiguous - deletes leave gaps.
type OrderedRecord struct {
	ID        string    `json:"id"`
	SortOrder int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Record exposes the shared fields to the generic repository and service.
func (r *OrderedRecord) Record() *OrderedRecord { return r }

// Project card sizes. Controls the rendered card footprint; entities
// created without a size get ProjectSizeDefault.
const (
	ProjectSizeSmall   = "small"
	ProjectSizeMedium  = "medium"
	ProjectSizeLarge   = "large"
	ProjectSizeDefault = ProjectSizeMedium
)

// Project is a portfolio case study.
type Project struct {
	OrderedRecord
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Role        string     `json:"role"`
	Challenges  string     `json:"challenges"`
	Tags        StringList `json:"tags"`
	Size        string     `json:"size"`
	DemoURL     string     `json:"demoUrl"`
	GitHubURL   string     `json:"githubUrl"`
	Featured    bool       `json:"featured"`
}

// Experience is one position on the career timeline.
type Experience struct {
	OrderedRecord
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	CompanyURL   string     `json:"companyUrl"`
	Location     string     `json:"location"`
	Period       string     `json:"period"`
	Description  string     `json:"description"`
	Achievements StringList `json:"achievements"`
}

// Education is one degree or program entry.
type Education struct {
	OrderedRecord
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	Institution string     `json:"institution"`
	Year        string     `json:"year"`
	Honors      string     `json:"honors"`
	Coursework  StringList `json:"coursework"`
}

// Certification is a professional certification entry.
type Certification struct {
	OrderedRecord
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Achievement is a one-line highlight shown alongside education.
type Achievement struct {
	OrderedRecord
	Text string `json:"text"`
}

// SkillCategory groups an ordered list of skill names under a heading.
type SkillCategory struct {
	OrderedRecord
	Title  string     `json:"title"`
	Color  string     `json:"color"`
	Skills StringList `json:"skills"`
}
