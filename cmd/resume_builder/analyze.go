package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/analysis"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJob        string
	analyzeJobURL     string
	analyzeAPIKey     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  `Run ATS compatibility analysis for a resume against a job description and print the score and suggestions as JSON. Falls back to a deterministic result when the scoring service is unavailable.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.json, .txt or .docx)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Generation API key (optional, defaults to COHERE_API_KEY env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted analysis summary")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if analyzeJob == "" && analyzeJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if analyzeJob != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg, err := loadAppConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}

	record, err := loadResumeRecord(analyzeResume)
	if err != nil {
		return err
	}

	jobDescription, err := resolveJob(ctx, analyzeJob, analyzeJobURL, cfg.UseBrowser)
	if err != nil {
		return err
	}

	client, err := buildLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result := analysis.NewAnalyzer(client).Analyze(ctx, rendering.Render(record), jobDescription)

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintAnalysis(result)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	return writeOutput("", append(data, '\n'))
}
