package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var (
	exportResume  string
	exportContent string
	exportOutput  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume as a DOCX document",
	Long:  `Render a resume record (or previously generated markup) to canonical markup and encode it as a DOCX file.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportResume, "resume", "r", "", "Path to resume file (.json, .txt or .docx)")
	exportCmd.Flags().StringVar(&exportContent, "content", "", "Path to pre-generated markup to encode instead of rendering the record")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Path for the DOCX file (defaults to {firstName}_{lastName}.docx)")
	_ = exportCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	record, err := loadResumeRecord(exportResume)
	if err != nil {
		return err
	}

	markup := rendering.Render(record)
	if exportContent != "" {
		data, err := os.ReadFile(exportContent)
		if err != nil {
			return fmt.Errorf("failed to read content file: %w", err)
		}
		markup = string(data)
	}

	data, err := document.EncodeCanonical(markup)
	if err != nil {
		return err
	}

	out := exportOutput
	if out == "" {
		out = document.ExportFilename(record)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}
