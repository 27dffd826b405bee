package generation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLLMClient is a test double for llm.Client.
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, opts *llm.GenerateOptions) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, opts *llm.GenerateOptions) (string, error) {
	return m.GenerateContentFunc(ctx, prompt, opts)
}

func (m *MockLLMClient) Close() error { return nil }

func testRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Phone:     "555-123-4567",
		},
		Experience: []types.WorkExperience{{ID: "e1", Company: "Acme", Title: "Engineer"}},
		Education:  []types.EducationItem{{ID: "ed1", Institution: "MIT", Degree: "B.S."}},
		Skills:     []string{"Go"},
	}
}

// usableReply is long enough and names a required section.
var usableReply = "# Jane Doe\n\n## Experience\n### Acme\n" + strings.Repeat("Led key initiatives across the platform. ", 10)

func TestGenerate_UsesServiceReply(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, opts *llm.GenerateOptions) (string, error) {
			assert.Contains(t, prompt, "Jane")
			assert.Contains(t, prompt, "Backend engineer role")
			require.NotNil(t, opts)
			assert.Equal(t, generationMaxTokens, opts.MaxTokens)
			return usableReply, nil
		},
	}

	content := NewGenerator(client).Generate(context.Background(), testRecord(), "Backend engineer role")

	assert.Equal(t, strings.TrimSpace(usableReply), content)
}

func TestGenerate_ServiceErrorFallsBackToTemplate(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(context.Context, string, *llm.GenerateOptions) (string, error) {
			return "", errors.New("connection refused")
		},
	}

	record := testRecord()
	content := NewGenerator(client).Generate(context.Background(), record, "job")

	assert.Equal(t, rendering.Render(record), content)
}

func TestGenerate_ShortReplyFallsBack(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(context.Context, string, *llm.GenerateOptions) (string, error) {
			return "## Experience\nToo short.", nil
		},
	}

	record := testRecord()
	content := NewGenerator(client).Generate(context.Background(), record, "job")

	assert.Equal(t, rendering.Render(record), content)
}

func TestGenerate_ReplyMissingAllSectionsFallsBack(t *testing.T) {
	client := &MockLLMClient{
		GenerateContentFunc: func(context.Context, string, *llm.GenerateOptions) (string, error) {
			return strings.Repeat("An essay about nothing in particular. ", 20), nil
		},
	}

	record := testRecord()
	content := NewGenerator(client).Generate(context.Background(), record, "job")

	assert.Equal(t, rendering.Render(record), content)
}

func TestGenerate_EmptyJobDescriptionUsesGenericPlaceholder(t *testing.T) {
	var captured string
	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ *llm.GenerateOptions) (string, error) {
			captured = prompt
			return usableReply, nil
		},
	}

	NewGenerator(client).Generate(context.Background(), testRecord(), "")

	assert.Contains(t, captured, "General professional position")
}

func TestHasRequiredSection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"experience heading", "## Experience", true},
		{"education in prose", "Formal EDUCATION at MIT", true},
		{"skills", "skills: Go", true},
		{"none present", "just some words", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasRequiredSection(tt.content))
		})
	}
}

func TestUnusableOutputError_Message(t *testing.T) {
	err := &UnusableOutputError{Reason: "generated content too short"}
	assert.Contains(t, err.Error(), "too short")
}
