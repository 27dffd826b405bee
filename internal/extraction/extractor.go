// Package extraction converts unstructured resume text into a partial
// ResumeRecord. The parse is best-effort and intentionally lossy: it seeds
// the form editor for manual correction and never fails on malformed input.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9._-]+`)
	phonePattern = regexp.MustCompile(`[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}`)
	skillsLabel  = regexp.MustCompile(`(?i)skills:?`)
)

// sectionMarker tracks which resume section subsequent text blocks belong to.
type sectionMarker int

const (
	markerNone sectionMarker = iota
	markerExperience
	markerEducation
	markerSkills
)

// Extract parses raw resume text into a partial ResumeRecord.
//
// The text is split into sections on blank-line boundaries and folded left to
// right with an explicit section marker. Each section takes exactly one
// branch, tested in order: contact block, experience marker, education
// marker, skills, experience entry, education entry. Absent matches leave the
// corresponding fields at their defaults; Extract never returns an error.
func Extract(text string) *types.ResumeRecord {
	record := types.NewResumeRecord()

	sections := strings.Split(text, "\n\n")
	marker := markerNone

	for _, section := range sections {
		lower := strings.ToLower(section)

		switch {
		case strings.Contains(section, "@") && strings.Contains(section, "."):
			// Contact block. First match wins so a later signature line
			// cannot clobber the header contact info.
			if record.PersonalInfo.Email == "" {
				record.PersonalInfo.Email = emailPattern.FindString(section)
			}
			if record.PersonalInfo.Phone == "" {
				record.PersonalInfo.Phone = phonePattern.FindString(section)
			}

		case strings.Contains(lower, "experience") || strings.Contains(lower, "work"):
			marker = markerExperience

		case strings.Contains(lower, "education"):
			marker = markerEducation

		case strings.Contains(lower, "skills"):
			marker = markerSkills
			record.Skills = parseSkills(section)

		case marker == markerExperience && strings.TrimSpace(section) != "":
			record.Experience = append(record.Experience, parseExperience(section))

		case marker == markerEducation && strings.TrimSpace(section) != "":
			record.Education = append(record.Education, parseEducation(section))
		}
	}

	return record
}

// parseSkills strips the section's "skills" label and splits the remainder on
// commas and semicolons. Only the first label occurrence is removed, so a
// skill token such as "communication skills" survives intact. Tokens that trim
// to nothing are dropped.
func parseSkills(section string) []string {
	list := section
	if loc := skillsLabel.FindStringIndex(list); loc != nil {
		list = list[:loc[0]] + list[loc[1]:]
	}

	skills := []string{}
	for _, token := range strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		token = strings.TrimSpace(token)
		if token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}

// parseExperience converts one text block into a WorkExperience: first line
// is the company, second line the title, the whole block the description, and
// lines prefixed with "-" become achievements.
func parseExperience(section string) types.WorkExperience {
	exp := types.NewWorkExperience()
	exp.Company = "Company Name"
	exp.Title = "Position"
	exp.Description = section
	exp.Achievements = []string{}

	lines := strings.Split(section, "\n")
	if len(lines) > 0 && lines[0] != "" {
		exp.Company = lines[0]
	}
	if len(lines) > 1 && lines[1] != "" {
		exp.Title = lines[1]
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "-") {
			exp.Achievements = append(exp.Achievements, strings.TrimSpace(strings.TrimPrefix(line, "-")))
		}
	}

	return exp
}

// parseEducation converts one text block into an EducationItem. Degree and
// field of study are inferred by literal substring search; anything else
// falls back to placeholder values for the form editor.
func parseEducation(section string) types.EducationItem {
	edu := types.NewEducationItem()
	edu.Institution = "Institution"

	lines := strings.Split(section, "\n")
	if len(lines) > 0 && lines[0] != "" {
		edu.Institution = lines[0]
	}

	switch {
	case strings.Contains(section, "M.S."):
		edu.Degree = "M.S."
	case strings.Contains(section, "B.S."):
		edu.Degree = "B.S."
	default:
		edu.Degree = "Degree"
	}

	if strings.Contains(section, "Computer Science") {
		edu.FieldOfStudy = "Computer Science"
	} else {
		edu.FieldOfStudy = "Field of Study"
	}

	return edu
}
