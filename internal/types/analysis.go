package types

// KeywordSuggestions lists keywords from the job description that were found
// in, or missing from, the resume.
type KeywordSuggestions struct {
	Missing []string `json:"missing"`
	Found   []string `json:"found"`
}

// SuggestionGroup pairs detected issues with recommended fixes for one
// aspect of the resume (structure, formatting, content).
type SuggestionGroup struct {
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// Suggestions holds the four suggestion categories of an analysis.
type Suggestions struct {
	Keywords   KeywordSuggestions `json:"keywords"`
	Structure  SuggestionGroup    `json:"structure"`
	Formatting SuggestionGroup    `json:"formatting"`
	Content    SuggestionGroup    `json:"content"`
}

// AnalysisResult is the ATS compatibility verdict for one analysis request.
// Results are immutable; a new request supersedes the previous result rather
// than merging with it.
type AnalysisResult struct {
	Score       int         `json:"score"`
	Suggestions Suggestions `json:"suggestions"`
}

// FallbackAnalysis returns the deterministic placeholder result used when the
// scoring service fails or returns an unusable reply.
func FallbackAnalysis() *AnalysisResult {
	return &AnalysisResult{
		Score: 75,
		Suggestions: Suggestions{
			Keywords: KeywordSuggestions{
				Missing: []string{"key skills from job description"},
				Found:   []string{"existing skills from resume"},
			},
			Structure: SuggestionGroup{
				Issues:          []string{"Review resume structure"},
				Recommendations: []string{"Add more achievements"},
			},
			Formatting: SuggestionGroup{
				Issues:          []string{"Check formatting"},
				Recommendations: []string{"Ensure consistent format"},
			},
			Content: SuggestionGroup{
				Issues:          []string{"Review content"},
				Recommendations: []string{"Add specific examples"},
			},
		},
	}
}
