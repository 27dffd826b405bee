// Package analysis scores a resume against a job description through the
// hosted generation service. The service replies in free text; a JSON object
// is pattern-matched out of the reply and schema-checked. Scoring never
// surfaces an error to callers: any network, parse, or validation failure
// resolves to the deterministic fallback result.
package analysis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// Generation parameters for the analysis call. Analysis wants long, flat
// output, so the temperature sits low.
const (
	analysisMaxTokens   = 2500
	analysisTemperature = 0.2
)

// Analyzer produces ATS compatibility results for resume text.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an analyzer backed by the given LLM client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze scores resumeText against jobDescription. The returned result is
// always usable; failures are logged and replaced with the fallback object.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) *types.AnalysisResult {
	prompt := prompts.Render("analysis.json", "ats_analysis", map[string]string{
		"Resume":         resumeText,
		"JobDescription": jobDescription,
	})

	reply, err := a.client.GenerateContent(ctx, prompt, &llm.GenerateOptions{
		MaxTokens:   analysisMaxTokens,
		Temperature: analysisTemperature,
	})
	if err != nil {
		log.Printf("[ANALYSIS] generation request failed, using fallback: %v", err)
		return types.FallbackAnalysis()
	}

	result, err := parseAnalysisReply(reply)
	if err != nil {
		log.Printf("[ANALYSIS] unusable reply, using fallback: %v", err)
		return types.FallbackAnalysis()
	}

	return result
}

// parseAnalysisReply extracts, schema-checks, and unmarshals the JSON object
// embedded in a free-text reply.
func parseAnalysisReply(reply string) (*types.AnalysisResult, error) {
	candidate := llm.ExtractJSONObject(llm.CleanJSONBlock(reply))
	if candidate == "" {
		return nil, &ParseError{Message: "no JSON object in reply"}
	}

	if err := schemas.ValidateAnalysisResult(candidate); err != nil {
		return nil, &ParseError{Message: "reply failed schema validation", Cause: err}
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return nil, &ParseError{Message: "reply is not valid JSON", Cause: err}
	}

	return &result, nil
}
