// Package pipeline wires the resume-builder stages into one run: ingest the
// job description, seed a record from resume text, then score and generate
// concurrently.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/analysis"
	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// RunOptions configures one pipeline run. Either ResumeText or Record must
// be set; the job description may be inline text or a URL.
type RunOptions struct {
	ResumeText string
	Record     *types.ResumeRecord

	JobDescription string
	JobURL         string
	UseBrowser     bool
}

// RunResult holds the outputs of a pipeline run.
type RunResult struct {
	Record   *types.ResumeRecord
	Analysis *types.AnalysisResult
	Content  string
}

// Run executes the pipeline. Scoring and generation are independent calls to
// the same service, so they run concurrently; both resolve to fallbacks on
// failure, which keeps the result renderable in every case.
func Run(ctx context.Context, client llm.Client, opts RunOptions) (*RunResult, error) {
	jobDescription, err := resolveJobDescription(ctx, opts)
	if err != nil {
		return nil, err
	}

	record := opts.Record
	if record == nil {
		if opts.ResumeText == "" {
			return nil, fmt.Errorf("either resume text or a resume record is required")
		}
		record = extraction.Extract(opts.ResumeText)
	}
	record.EnsureIDs()

	resumeText := opts.ResumeText
	if resumeText == "" {
		resumeText = rendering.Render(record)
	}

	result := &RunResult{Record: record}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Analysis = analysis.NewAnalyzer(client).Analyze(gCtx, resumeText, jobDescription)
		return nil
	})
	g.Go(func() error {
		result.Content = generation.NewGenerator(client).Generate(gCtx, record, jobDescription)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// resolveJobDescription returns the inline description, or fetches and
// ingests the posting when only a URL was supplied.
func resolveJobDescription(ctx context.Context, opts RunOptions) (string, error) {
	if opts.JobDescription != "" {
		return opts.JobDescription, nil
	}
	if opts.JobURL == "" {
		return "", nil
	}

	text, err := ingestion.IngestFromURL(ctx, opts.JobURL, opts.UseBrowser)
	if err != nil {
		return "", fmt.Errorf("failed to ingest job posting: %w", err)
	}
	return text, nil
}
