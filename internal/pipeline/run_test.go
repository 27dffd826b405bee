package pipeline

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

// failingClient always errors, driving both stages to their fallbacks.
var failingClient = &MockLLMClient{
	GenerateContentFunc: func(context.Context, string, *llm.GenerateOptions) (string, error) {
		return "", errors.New("service unavailable")
	},
}

func TestRun_FromResumeText(t *testing.T) {
	resumeText := "Jane Doe\njane@example.com\n555-123-4567\n\nSkills: Go, Rust"

	result, err := Run(context.Background(), failingClient, RunOptions{
		ResumeText:     resumeText,
		JobDescription: "Backend engineer role",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Record)
	assert.Equal(t, "jane@example.com", result.Record.PersonalInfo.Email)
	assert.Equal(t, []string{"Go", "Rust"}, result.Record.Skills)

	// Both stages resolved to fallbacks.
	assert.Equal(t, types.FallbackAnalysis(), result.Analysis)
	assert.Equal(t, rendering.Render(result.Record), result.Content)
}

func TestRun_FromRecord(t *testing.T) {
	record := &types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
		Experience:   []types.WorkExperience{{Company: "Acme", Title: "Engineer"}},
		Education:    []types.EducationItem{},
		Skills:       []string{"Go"},
	}

	result, err := Run(context.Background(), failingClient, RunOptions{
		Record:         record,
		JobDescription: "Backend role",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Record.Experience[0].ID, "ids are backfilled before use")
	assert.Equal(t, rendering.Render(result.Record), result.Content)
}

func TestRun_RequiresResumeInput(t *testing.T) {
	_, err := Run(context.Background(), failingClient, RunOptions{
		JobDescription: "Backend role",
	})

	assert.Error(t, err)
}

func TestRun_UsableServiceReplies(t *testing.T) {
	analysisJSON := `{
		"score": 90,
		"suggestions": {
			"keywords": {"missing": [], "found": ["Go"]},
			"structure": {"issues": [], "recommendations": []},
			"formatting": {"issues": [], "recommendations": []},
			"content": {"issues": [], "recommendations": []}
		}
	}`
	generated := "# Jane Doe\n\n## Experience\n" + strings.Repeat("Delivered measurable results. ", 10)

	client := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ *llm.GenerateOptions) (string, error) {
			// The two stages use distinct prompts; answer each in kind.
			if strings.Contains(prompt, "Analyze this resume") {
				return analysisJSON, nil
			}
			return generated, nil
		},
	}

	result, err := Run(context.Background(), client, RunOptions{
		ResumeText:     "Jane Doe\njane@example.com\n555-123-4567",
		JobDescription: "Backend role",
	})

	require.NoError(t, err)
	assert.Equal(t, 90, result.Analysis.Score)
	assert.Equal(t, strings.TrimSpace(generated), result.Content)
}

func TestRun_InvalidJobURL(t *testing.T) {
	_, err := Run(context.Background(), failingClient, RunOptions{
		ResumeText: "Jane Doe\njane@example.com\n555-123-4567",
		JobURL:     "://not-a-url",
	})

	assert.Error(t, err)
}
