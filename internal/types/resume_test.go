package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeRecord() *ResumeRecord {
	return &ResumeRecord{
		PersonalInfo: PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "555-123-4567",
			Location:  "Boston, MA",
		},
		Experience: []WorkExperience{
			{ID: "e1", Company: "Acme", Title: "Engineer", Achievements: []string{"Shipped v1"}},
		},
		Education: []EducationItem{
			{ID: "ed1", Institution: "MIT", Degree: "B.S.", FieldOfStudy: "Computer Science"},
		},
		Skills: []string{"Go", "SQL"},
	}
}

func TestNewResumeRecord_EmptySlices(t *testing.T) {
	record := NewResumeRecord()

	assert.NotNil(t, record.Experience)
	assert.NotNil(t, record.Education)
	assert.NotNil(t, record.Skills)
	assert.Empty(t, record.Experience)
	assert.Empty(t, record.Skills)
}

func TestNewWorkExperience_Defaults(t *testing.T) {
	exp := NewWorkExperience()

	assert.NotEmpty(t, exp.ID)
	assert.Equal(t, PresentSentinel, exp.EndDate)
	require.Len(t, exp.Achievements, 1)
	assert.Equal(t, "", exp.Achievements[0])
}

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ResumeRecord)
		want   bool
	}{
		{"complete record", func(*ResumeRecord) {}, true},
		{"missing first name", func(r *ResumeRecord) { r.PersonalInfo.FirstName = "" }, false},
		{"missing last name", func(r *ResumeRecord) { r.PersonalInfo.LastName = "" }, false},
		{"missing email", func(r *ResumeRecord) { r.PersonalInfo.Email = "" }, false},
		{"missing phone", func(r *ResumeRecord) { r.PersonalInfo.Phone = "" }, false},
		{"no experience", func(r *ResumeRecord) { r.Experience = nil }, false},
		{"experience without company", func(r *ResumeRecord) { r.Experience[0].Company = "" }, false},
		{"experience without title", func(r *ResumeRecord) { r.Experience[0].Title = "" }, false},
		{"no education", func(r *ResumeRecord) { r.Education = nil }, false},
		{"education without institution", func(r *ResumeRecord) { r.Education[0].Institution = "" }, false},
		{"education without degree", func(r *ResumeRecord) { r.Education[0].Degree = "" }, false},
		{"no skills", func(r *ResumeRecord) { r.Skills = nil }, false},
		{"missing location is still complete", func(r *ResumeRecord) { r.PersonalInfo.Location = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := completeRecord()
			tt.mutate(record)
			assert.Equal(t, tt.want, record.IsComplete())
		})
	}
}

func TestClone_DeepCopy(t *testing.T) {
	original := completeRecord()
	clone := original.Clone()

	require.Equal(t, original, clone)

	// Mutating the clone must not touch the original.
	clone.PersonalInfo.FirstName = "John"
	clone.Experience[0].Achievements[0] = "changed"
	clone.Skills[0] = "Rust"

	assert.Equal(t, "Jane", original.PersonalInfo.FirstName)
	assert.Equal(t, "Shipped v1", original.Experience[0].Achievements[0])
	assert.Equal(t, "Go", original.Skills[0])
}

func TestEnsureIDs_BackfillsMissing(t *testing.T) {
	record := &ResumeRecord{
		Experience: []WorkExperience{
			{Company: "Acme"},
			{ID: "keep-me", Company: "Beta", Achievements: []string{"a"}},
		},
		Education:      []EducationItem{{Institution: "MIT"}},
		Certifications: []Certification{{Name: "CKA"}},
		Languages:      []Language{{Name: "Spanish"}},
		Projects:       []Project{{Name: "Side project"}},
	}

	record.EnsureIDs()

	assert.NotEmpty(t, record.Experience[0].ID)
	assert.Equal(t, "keep-me", record.Experience[1].ID)
	assert.NotEmpty(t, record.Education[0].ID)
	assert.NotEmpty(t, record.Certifications[0].ID)
	assert.NotEmpty(t, record.Languages[0].ID)
	assert.NotEmpty(t, record.Projects[0].ID)

	// Experience entries always carry at least one achievement slot.
	require.Len(t, record.Experience[0].Achievements, 1)
	assert.Equal(t, []string{"a"}, record.Experience[1].Achievements)
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      string
	}{
		{"both names", "Jane", "Doe", "Jane Doe"},
		{"first only", "Jane", "", "Jane"},
		{"last only", "", "Doe", "Doe"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &ResumeRecord{PersonalInfo: PersonalInfo{FirstName: tt.firstName, LastName: tt.lastName}}
			assert.Equal(t, tt.want, record.FullName())
		})
	}
}
