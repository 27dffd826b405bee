// Package generation produces an improved resume narrative through the
// hosted generation service, falling back to the deterministic template
// renderer whenever the service fails or returns unusable output.
package generation

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	generationMaxTokens   = 2000
	generationTemperature = 0.3

	// minOutputLength rejects truncated or degenerate replies.
	minOutputLength = 200
)

// requiredSections are section names an acceptable resume narrative must
// mention at least once (case-insensitive substring match).
var requiredSections = []string{"experience", "education", "skills"}

// Generator produces improved resume content for a record.
type Generator struct {
	client llm.Client
}

// NewGenerator creates a generator backed by the given LLM client.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate returns an ATS-optimized resume narrative for the record. On any
// service failure, too-short output, or output missing every required
// section, it falls back to rendering the record through the template,
// so the returned content is always a valid canonical document.
func (g *Generator) Generate(ctx context.Context, record *types.ResumeRecord, jobDescription string) string {
	content, err := g.generate(ctx, record, jobDescription)
	if err != nil {
		log.Printf("[GENERATION] falling back to template: %v", err)
		return rendering.Render(record)
	}
	return content
}

func (g *Generator) generate(ctx context.Context, record *types.ResumeRecord, jobDescription string) (string, error) {
	recordJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", err
	}

	if jobDescription == "" {
		jobDescription = "General professional position"
	}

	prompt := prompts.Render("generation.json", "improved_resume", map[string]string{
		"ResumeData":     string(recordJSON),
		"JobDescription": jobDescription,
	})

	reply, err := g.client.GenerateContent(ctx, prompt, &llm.GenerateOptions{
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(reply)
	if len(content) < minOutputLength {
		return "", &UnusableOutputError{Reason: "generated content too short"}
	}

	if !hasRequiredSection(content) {
		return "", &UnusableOutputError{Reason: "missing required sections"}
	}

	return content, nil
}

// hasRequiredSection reports whether the content mentions at least one of
// the required section names.
func hasRequiredSection(content string) bool {
	lower := strings.ToLower(content)
	for _, section := range requiredSections {
		if strings.Contains(lower, section) {
			return true
		}
	}
	return false
}
