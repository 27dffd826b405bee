package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var (
	extractInput   string
	extractOutput  string
	extractVerbose bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured resume record from raw text or a DOCX file",
	Long:  `Read a resume as plain text or DOCX, run heuristic extraction and print the structured record as JSON.`,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Path to resume file (.txt or .docx)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Path to write the record JSON (defaults to stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary of the extracted record")
	_ = extractCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	record, err := loadResumeRecord(extractInput)
	if err != nil {
		return err
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintResumeSummary(record)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return writeOutput(extractOutput, append(data, '\n'))
}
