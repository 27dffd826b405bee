package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents a request to score a resume against a job
// description. The job description may be supplied inline or as a URL to a
// posting that will be fetched and ingested.
type AnalyzeRequest struct {
	JobDescription string `json:"job_description,omitempty" validate:"required_without=JobURL"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// GenerateRequest represents a request to generate an improved resume
// narrative for the current record.
type GenerateRequest struct {
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
