package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_ContactBlock(t *testing.T) {
	record := Extract("Jane Doe\njane@example.com\n555-123-4567")

	assert.Equal(t, "jane@example.com", record.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", record.PersonalInfo.Phone)
}

func TestExtract_FirstContactBlockWins(t *testing.T) {
	text := "Jane Doe\njane@example.com\n555-123-4567\n\n" +
		"Contact my references at refs@other.example.org\n(111) 222-3333"

	record := Extract(text)

	assert.Equal(t, "jane@example.com", record.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", record.PersonalInfo.Phone)
}

func TestExtract_EmptyInput(t *testing.T) {
	record := Extract("")

	require.NotNil(t, record)
	assert.Empty(t, record.PersonalInfo.Email)
	assert.Empty(t, record.Experience)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.Skills)
}

func TestExtract_Skills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"comma separated", "Skills: Go, Rust, SQL", []string{"Go", "Rust", "SQL"}},
		{"semicolons and extra spaces", "SKILLS\nGo;  Rust ; SQL", []string{"Go", "Rust", "SQL"}},
		{"label word inside a skill survives", "Skills: Go, communication skills, Rust", []string{"Go", "communication skills", "Rust"}},
		{"only first label occurrence removed", "Skills: problem solving; SKILLS training", []string{"problem solving", "SKILLS training"}},
		{"empty tokens between separators dropped", "Skills: Go,, Rust, , SQL", []string{"Go", "Rust", "SQL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract(tt.text)
			assert.Equal(t, tt.want, record.Skills)
		})
	}
}

func TestExtract_ExperienceEntries(t *testing.T) {
	text := strings.Join([]string{
		"Work Experience",
		"Acme Corp\nSenior Engineer\n- Led migration to Go\n- Cut latency by 40%",
		"Beta LLC\nEngineer",
	}, "\n\n")

	record := Extract(text)

	require.Len(t, record.Experience, 2)
	assert.Equal(t, "Acme Corp", record.Experience[0].Company)
	assert.Equal(t, "Senior Engineer", record.Experience[0].Title)
	assert.Equal(t, []string{"Led migration to Go", "Cut latency by 40%"}, record.Experience[0].Achievements)
	assert.Contains(t, record.Experience[0].Description, "Acme Corp")

	assert.Equal(t, "Beta LLC", record.Experience[1].Company)
	assert.Empty(t, record.Experience[1].Achievements)
}

func TestExtract_EducationEntries(t *testing.T) {
	text := strings.Join([]string{
		"Education",
		"MIT\nB.S. in Computer Science",
		"State University\nSome other program",
	}, "\n\n")

	record := Extract(text)

	require.Len(t, record.Education, 2)
	assert.Equal(t, "MIT", record.Education[0].Institution)
	assert.Equal(t, "B.S.", record.Education[0].Degree)
	assert.Equal(t, "Computer Science", record.Education[0].FieldOfStudy)

	assert.Equal(t, "State University", record.Education[1].Institution)
	assert.Equal(t, "Degree", record.Education[1].Degree)
	assert.Equal(t, "Field of Study", record.Education[1].FieldOfStudy)
}

func TestExtract_MarkerSwitchesSection(t *testing.T) {
	text := strings.Join([]string{
		"Experience",
		"Acme Corp\nEngineer",
		"Education",
		"MIT\nM.S. in Computer Science",
	}, "\n\n")

	record := Extract(text)

	require.Len(t, record.Experience, 1)
	require.Len(t, record.Education, 1)
	assert.Equal(t, "M.S.", record.Education[0].Degree)
}

func TestExtract_SectionTakesOneBranch(t *testing.T) {
	// A block that mentions experience keywords only moves the marker; its
	// own text never becomes an entry.
	record := Extract("Professional Experience")
	assert.Empty(t, record.Experience)
}

func TestExtract_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n\n",
		"@.",
		"experience\n\n\n\neducation",
		strings.Repeat("x", 10000),
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() { Extract(input) })
	}
}
