package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
)

// loadAppConfig loads the optional config file, applies environment fallbacks
// and validates the result.
func loadAppConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildLLMClient constructs the generation client from application config.
func buildLLMClient(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set COHERE_API_KEY or GEMINI_API_KEY, or pass --api-key)")
	}

	llmCfg := llm.DefaultConfig()
	switch llm.Provider(cfg.Provider) {
	case llm.ProviderGemini:
		llmCfg = llm.DefaultGeminiConfig()
	case llm.ProviderCohere:
		llmCfg = llm.DefaultCohereConfig()
	}
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}
	if cfg.Endpoint != "" {
		llmCfg.Endpoint = cfg.Endpoint
	}

	return llm.NewClient(ctx, llmCfg, cfg.APIKey)
}

// loadResumeRecord reads a resume from disk. JSON files are decoded as a
// structured record; DOCX files are decoded to text and extracted; anything
// else is treated as plain resume text.
func loadResumeRecord(path string) (*types.ResumeRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file: %w", err)
		}
		var record types.ResumeRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
		}
		record.EnsureIDs()
		return &record, nil
	case ".docx":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file: %w", err)
		}
		text, err := document.DecodeText(data)
		if err != nil {
			return nil, err
		}
		record := extraction.Extract(ingestion.CleanText(text))
		record.EnsureIDs()
		return record, nil
	default:
		text, err := ingestion.IngestFromFile(path)
		if err != nil {
			return nil, err
		}
		record := extraction.Extract(text)
		record.EnsureIDs()
		return record, nil
	}
}

// resolveJob returns the job description from an inline file or a URL.
func resolveJob(ctx context.Context, jobPath, jobURL string, useBrowser bool) (string, error) {
	if jobPath != "" {
		return ingestion.IngestFromFile(jobPath)
	}
	if jobURL != "" {
		return ingestion.IngestFromURL(ctx, jobURL, useBrowser)
	}
	return "", nil
}

// writeOutput writes data to the given path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
