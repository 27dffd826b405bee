package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full resume pipeline end-to-end",
	Long: `Orchestrates the entire resume build: ingestion -> extraction -> scoring + generation -> DOCX export.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath string
	runResume     string
	runJob        string
	runJobURL     string
	runAPIKey     string
	runUseBrowser bool
	runVerbose    bool
	runOutput     string
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume file (.json, .txt or .docx)")
	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	runCommand.Flags().StringVar(&runJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Generation API key (optional, defaults to COHERE_API_KEY env var)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Path for the DOCX file (defaults to {firstName}_{lastName}.docx)")
	_ = runCommand.MarkFlagRequired("resume")
	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if runJob == "" && runJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if runJob != "" && runJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg, err := loadAppConfig(runConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	record, err := loadResumeRecord(runResume)
	if err != nil {
		return err
	}

	var jobDescription string
	if runJob != "" {
		jobDescription, err = ingestion.IngestFromFile(runJob)
		if err != nil {
			return err
		}
	}

	client, err := buildLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := pipeline.Run(ctx, client, pipeline.RunOptions{
		Record:         record,
		JobDescription: jobDescription,
		JobURL:         runJobURL,
		UseBrowser:     cfg.UseBrowser,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResumeSummary(result.Record)
		printer.PrintAnalysis(result.Analysis)
	}

	data, err := document.EncodeCanonical(result.Content)
	if err != nil {
		return err
	}

	out := runOutput
	if out == "" {
		out = document.ExportFilename(result.Record)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	fmt.Printf("Score: %d\n", result.Analysis.Score)
	fmt.Printf("Wrote %s\n", out)
	return nil
}
