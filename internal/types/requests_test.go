package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalyzeRequest
		wantErr bool
	}{
		{"inline description", AnalyzeRequest{JobDescription: "Go engineer role"}, false},
		{"job url only", AnalyzeRequest{JobURL: "https://boards.greenhouse.io/acme/jobs/123"}, false},
		{"both set", AnalyzeRequest{JobDescription: "text", JobURL: "https://example.com/job"}, false},
		{"neither set", AnalyzeRequest{}, true},
		{"malformed url", AnalyzeRequest{JobURL: "not-a-url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateRequest_Validate(t *testing.T) {
	// An empty generate request is valid; generation substitutes a generic
	// job description when none is supplied.
	assert.NoError(t, (&GenerateRequest{}).Validate())
	assert.NoError(t, (&GenerateRequest{JobDescription: "Backend role"}).Validate())
	assert.Error(t, (&GenerateRequest{JobURL: "::bad::"}).Validate())
}
