// Package rendering produces the canonical markdown resume document from a
// ResumeRecord. The output uses a fixed heading and section grammar so that
// the document encoder and the generation fallback path both consume the same
// interchange format.
package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Render converts a resume record into the canonical markdown document.
//
// Render is a pure function: the same record always yields a byte-identical
// string. Sections appear in fixed order (name, contact, summary, education,
// experience, skills, certifications, languages, projects) and optional
// sections are omitted entirely when empty. Trailing whitespace is trimmed.
func Render(record *types.ResumeRecord) string {
	var sb strings.Builder

	fullName := record.FullName()
	if fullName == "" {
		fullName = "Your Name"
	}

	contactParts := []string{}
	pi := record.PersonalInfo
	if pi.Location != "" {
		contactParts = append(contactParts, pi.Location)
	}
	if pi.Email != "" {
		contactParts = append(contactParts, pi.Email)
	}
	if pi.Phone != "" {
		contactParts = append(contactParts, pi.Phone)
	}
	if pi.LinkedIn != "" {
		contactParts = append(contactParts, pi.LinkedIn)
	}
	if pi.Website != "" {
		contactParts = append(contactParts, pi.Website)
	}

	contactLine := "Location • Email • Phone"
	if len(contactParts) > 0 {
		contactLine = strings.Join(contactParts, " • ")
	}

	fmt.Fprintf(&sb, "# %s\n%s\n\n", fullName, contactLine)

	if record.Summary != "" {
		fmt.Fprintf(&sb, "## Summary\n%s\n\n", record.Summary)
	}

	renderEducation(&sb, record.Education)
	renderExperience(&sb, record.Experience)

	if len(record.Skills) > 0 {
		fmt.Fprintf(&sb, "## Skills\n%s\n\n", strings.Join(record.Skills, ", "))
	}

	renderCertifications(&sb, record.Certifications)
	renderLanguages(&sb, record.Languages)
	renderProjects(&sb, record.Projects)

	return strings.TrimSpace(sb.String())
}

func renderEducation(sb *strings.Builder, education []types.EducationItem) {
	if len(education) == 0 {
		return
	}

	sb.WriteString("## Education\n")
	for _, edu := range education {
		if edu.Institution == "" {
			continue
		}
		fmt.Fprintf(sb, "### %s\n", edu.Institution)

		degreeInfo := []string{}
		if edu.Degree != "" {
			degreeInfo = append(degreeInfo, edu.Degree)
		}
		if edu.FieldOfStudy != "" {
			degreeInfo = append(degreeInfo, "in "+edu.FieldOfStudy)
		}

		dateRange := []string{}
		if edu.StartDate != "" {
			dateRange = append(dateRange, edu.StartDate)
		}
		if edu.EndDate != "" {
			dateRange = append(dateRange, edu.EndDate)
		}

		if len(degreeInfo) > 0 {
			sb.WriteString(strings.Join(degreeInfo, " "))
			if len(dateRange) > 0 {
				sb.WriteString(" | " + strings.Join(dateRange, " - "))
			}
			sb.WriteString("\n")
		}

		if edu.Location != "" {
			sb.WriteString(edu.Location + "\n")
		}
		if edu.GPA != "" {
			fmt.Fprintf(sb, "GPA: %s\n", edu.GPA)
		}

		writeAchievements(sb, edu.Achievements)
		sb.WriteString("\n")
	}
}

func renderExperience(sb *strings.Builder, experience []types.WorkExperience) {
	if len(experience) == 0 {
		return
	}

	sb.WriteString("## Experience\n")
	for _, exp := range experience {
		if exp.Company == "" {
			continue
		}
		fmt.Fprintf(sb, "### %s\n", exp.Company)

		if exp.Title != "" {
			sb.WriteString(exp.Title)
			if exp.StartDate != "" || exp.EndDate != "" {
				fmt.Fprintf(sb, " | %s - %s", exp.StartDate, exp.EndDate)
			}
			sb.WriteString("\n")
		}

		if exp.Location != "" {
			sb.WriteString(exp.Location + "\n")
		}
		if exp.Description != "" {
			sb.WriteString(exp.Description + "\n")
		}

		writeAchievements(sb, exp.Achievements)
		sb.WriteString("\n")
	}
}

// writeAchievements emits one list item per non-empty achievement. Empty
// strings are the form editor's placeholder entries and are skipped
// per item rather than by inspecting only the first element.
func writeAchievements(sb *strings.Builder, achievements []string) {
	for _, achievement := range achievements {
		if achievement != "" {
			fmt.Fprintf(sb, "- %s\n", achievement)
		}
	}
}

func renderCertifications(sb *strings.Builder, certifications []types.Certification) {
	if len(certifications) == 0 {
		return
	}

	sb.WriteString("## Certifications\n")
	for _, cert := range certifications {
		if cert.Name == "" {
			continue
		}
		sb.WriteString("- " + cert.Name)
		if cert.Issuer != "" {
			sb.WriteString(" | " + cert.Issuer)
		}
		if cert.Date != "" {
			sb.WriteString(" | " + cert.Date)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func renderLanguages(sb *strings.Builder, languages []types.Language) {
	if len(languages) == 0 {
		return
	}

	sb.WriteString("## Languages\n")
	for _, lang := range languages {
		if lang.Name == "" {
			continue
		}
		sb.WriteString("- " + lang.Name)
		if lang.Proficiency != "" {
			sb.WriteString(": " + lang.Proficiency)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func renderProjects(sb *strings.Builder, projects []types.Project) {
	if len(projects) == 0 {
		return
	}

	sb.WriteString("## Projects\n")
	for _, proj := range projects {
		if proj.Name == "" {
			continue
		}
		fmt.Fprintf(sb, "### %s\n", proj.Name)
		if proj.Description != "" {
			sb.WriteString(proj.Description + "\n")
		}
		if len(proj.Technologies) > 0 {
			fmt.Fprintf(sb, "Technologies: %s\n", strings.Join(proj.Technologies, ", "))
		}
		if proj.URL != "" {
			fmt.Fprintf(sb, "URL: %s\n", proj.URL)
		}
		sb.WriteString("\n")
	}
}
