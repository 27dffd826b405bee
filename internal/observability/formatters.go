// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of an extracted record.
func (p *Printer) PrintResumeSummary(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", record.FullName()))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", record.PersonalInfo.Email))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", record.PersonalInfo.Phone))
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(record.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(record.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", len(record.Skills)))
	sb.WriteString(fmt.Sprintf("Complete:   %t", record.IsComplete()))

	p.printBox("EXTRACTED RESUME", sb.String())
}

// PrintAnalysis outputs a human-readable summary of an ATS analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n\n", result.Score))

	sb.WriteString("Missing keywords:\n")
	writeItems(&sb, result.Suggestions.Keywords.Missing)
	sb.WriteString("\nFound keywords:\n")
	writeItems(&sb, result.Suggestions.Keywords.Found)

	sb.WriteString("\nRecommendations:\n")
	recommendations := append([]string{}, result.Suggestions.Structure.Recommendations...)
	recommendations = append(recommendations, result.Suggestions.Formatting.Recommendations...)
	recommendations = append(recommendations, result.Suggestions.Content.Recommendations...)
	writeItems(&sb, recommendations)

	p.printBox("ATS ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// writeItems writes up to maxItemsToShow items as a bulleted list.
func writeItems(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("  (none)\n")
		return
	}

	shown := items
	if len(shown) > maxItemsToShow {
		shown = shown[:maxItemsToShow]
	}
	for _, item := range shown {
		sb.WriteString(fmt.Sprintf("  - %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
