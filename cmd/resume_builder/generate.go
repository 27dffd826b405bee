package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/spf13/cobra"
)

var (
	generateConfigPath string
	generateResume     string
	generateJob        string
	generateJobURL     string
	generateAPIKey     string
	generateUseBrowser bool
	generateOutput     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate improved resume content tailored to a job description",
	Long:  `Generate an improved resume in canonical markup for a job description. Falls back to a deterministic template rendering when the generation service fails or returns unusable output.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file")
	generateCmd.Flags().StringVarP(&generateResume, "resume", "r", "", "Path to resume file (.json, .txt or .docx)")
	generateCmd.Flags().StringVarP(&generateJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Generation API key (optional, defaults to COHERE_API_KEY env var)")
	generateCmd.Flags().BoolVar(&generateUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Path to write the generated markup (defaults to stdout)")
	_ = generateCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if generateJob != "" && generateJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	cfg, err := loadAppConfig(generateConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = generateAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = generateUseBrowser
	}

	record, err := loadResumeRecord(generateResume)
	if err != nil {
		return err
	}

	jobDescription, err := resolveJob(ctx, generateJob, generateJobURL, cfg.UseBrowser)
	if err != nil {
		return err
	}

	client, err := buildLLMClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	content := generation.NewGenerator(client).Generate(ctx, record, jobDescription)
	return writeOutput(generateOutput, []byte(content+"\n"))
}
