// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analysis"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the analyze command
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to maxItemsToShow bulleted entries with an overflow line.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		if len(item) > 50 {
			item = item[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintAssessment outputs a human-readable summary of one analysis result.
func (p *Printer) PrintAssessment(fileName string, a *analysis.Assessment) {
	if a == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", fileName))
	sb.WriteString(fmt.Sprintf("Score:    %d\n", a.Score))
	sb.WriteString(fmt.Sprintf("Summary:  %s\n", a.Summary))
	sb.WriteString("\n")

	writeList(&sb, "Strengths", a.Pros)
	writeList(&sb, "Weaknesses", a.Cons)
	writeList(&sb, "Recommendations", a.Recommendations)

	if len(a.Jobs) > 0 {
		sb.WriteString("Suggested Roles:\n")
		for _, job := range a.Jobs {
			sb.WriteString(fmt.Sprintf("  • %s (%d%%)\n", job.Title, job.MatchPercentage))
		}
	}

	p.printBox("RESUME ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintError outputs a failed analysis in the same boxed format.
func (p *Printer) PrintError(fileName string, err error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:  %s\n", fileName))
	sb.WriteString(fmt.Sprintf("Error: %v", err))
	p.printBox("ANALYSIS FAILED", sb.String())
}
