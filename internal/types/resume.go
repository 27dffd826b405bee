// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import (
	"github.com/google/uuid"
)

// PersonalInfo holds the contact block of a resume.
// FirstName, LastName, Email and Phone are required for a complete record.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// WorkExperience represents one position in the experience section.
// EndDate may carry the "Present" sentinel for current positions.
type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// EducationItem represents one entry in the education section.
type EducationItem struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"fieldOfStudy,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Certification represents a professional certification.
type Certification struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date"`
	Expires string `json:"expires,omitempty"`
}

// Language represents a spoken language and its proficiency level.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// Project represents a personal or professional project.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// PresentSentinel is the end-date value used for current positions.
const PresentSentinel = "Present"

// ResumeRecord is the canonical resume entity. It is owned by a single
// session, edited with replace semantics (every edit produces a new value),
// and never persisted.
type ResumeRecord struct {
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	Summary        string           `json:"summary,omitempty"`
	Experience     []WorkExperience `json:"experience"`
	Education      []EducationItem  `json:"education"`
	Skills         []string         `json:"skills"`
	Certifications []Certification  `json:"certifications,omitempty"`
	Languages      []Language       `json:"languages,omitempty"`
	Projects       []Project        `json:"projects,omitempty"`
}

// NewResumeRecord creates an empty resume record with non-nil slices.
func NewResumeRecord() *ResumeRecord {
	return &ResumeRecord{
		Experience: []WorkExperience{},
		Education:  []EducationItem{},
		Skills:     []string{},
	}
}

// NewWorkExperience creates an experience entry with a generated id and the
// single empty achievement the form editor expects.
func NewWorkExperience() WorkExperience {
	return WorkExperience{
		ID:           uuid.New().String(),
		EndDate:      PresentSentinel,
		Achievements: []string{""},
	}
}

// NewEducationItem creates an education entry with a generated id.
func NewEducationItem() EducationItem {
	return EducationItem{
		ID: uuid.New().String(),
	}
}

// IsComplete reports whether the record has enough content to proceed to
// generation: required contact fields, a first experience entry with company
// and title, a first education entry with institution and degree, and at
// least one skill.
func (r *ResumeRecord) IsComplete() bool {
	pi := r.PersonalInfo
	if pi.FirstName == "" || pi.LastName == "" || pi.Email == "" || pi.Phone == "" {
		return false
	}

	if len(r.Experience) == 0 || r.Experience[0].Company == "" || r.Experience[0].Title == "" {
		return false
	}

	if len(r.Education) == 0 || r.Education[0].Institution == "" || r.Education[0].Degree == "" {
		return false
	}

	if len(r.Skills) == 0 {
		return false
	}

	return true
}

// Clone returns a deep copy of the record. Callers use it to implement
// replace semantics: edit the copy, then swap it in as the new current value.
func (r *ResumeRecord) Clone() *ResumeRecord {
	clone := *r

	clone.Experience = make([]WorkExperience, len(r.Experience))
	for i, exp := range r.Experience {
		exp.Achievements = append([]string(nil), exp.Achievements...)
		clone.Experience[i] = exp
	}

	clone.Education = make([]EducationItem, len(r.Education))
	for i, edu := range r.Education {
		edu.Achievements = append([]string(nil), edu.Achievements...)
		clone.Education[i] = edu
	}

	clone.Skills = append([]string(nil), r.Skills...)

	if r.Certifications != nil {
		clone.Certifications = append([]Certification(nil), r.Certifications...)
	}
	if r.Languages != nil {
		clone.Languages = append([]Language(nil), r.Languages...)
	}
	clone.Projects = make([]Project, len(r.Projects))
	for i, proj := range r.Projects {
		proj.Technologies = append([]string(nil), proj.Technologies...)
		clone.Projects[i] = proj
	}
	if r.Projects == nil {
		clone.Projects = nil
	}

	return &clone
}

// EnsureIDs assigns generated ids to any list entries that are missing one.
// Records arriving from uploads or raw API payloads may not carry ids; every
// entry must have a non-empty id for its lifetime in the session.
func (r *ResumeRecord) EnsureIDs() {
	for i := range r.Experience {
		if r.Experience[i].ID == "" {
			r.Experience[i].ID = uuid.New().String()
		}
		if len(r.Experience[i].Achievements) == 0 {
			r.Experience[i].Achievements = []string{""}
		}
	}
	for i := range r.Education {
		if r.Education[i].ID == "" {
			r.Education[i].ID = uuid.New().String()
		}
	}
	for i := range r.Certifications {
		if r.Certifications[i].ID == "" {
			r.Certifications[i].ID = uuid.New().String()
		}
	}
	for i := range r.Languages {
		if r.Languages[i].ID == "" {
			r.Languages[i].ID = uuid.New().String()
		}
	}
	for i := range r.Projects {
		if r.Projects[i].ID == "" {
			r.Projects[i].ID = uuid.New().String()
		}
	}
}

// FullName returns the candidate's display name, or an empty string when
// both name fields are blank.
func (r *ResumeRecord) FullName() string {
	switch {
	case r.PersonalInfo.FirstName == "" && r.PersonalInfo.LastName == "":
		return ""
	case r.PersonalInfo.FirstName == "":
		return r.PersonalInfo.LastName
	case r.PersonalInfo.LastName == "":
		return r.PersonalInfo.FirstName
	default:
		return r.PersonalInfo.FirstName + " " + r.PersonalInfo.LastName
	}
}
