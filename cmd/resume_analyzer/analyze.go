package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var (
	analyzeJSON    bool
	analyzeWorkers int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Analyze resume files offline",
	Long: `Analyze one or more resume files (PDF or DOCX) without the server or
any external service. Uses the local heuristic scoring policy.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit raw JSON instead of formatted output")
	analyzeCmd.Flags().IntVar(&analyzeWorkers, "workers", 4, "Number of files to process concurrently")
	rootCmd.AddCommand(analyzeCmd)
}

// fileResult pairs one input file with its outcome.
type fileResult struct {
	File       string               `json:"file"`
	Assessment *analysis.Assessment `json:"assessment,omitempty"`
	Error      string               `json:"error,omitempty"`

	err error
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	policy := analysis.NewLocalOnlyPolicy()
	results := make([]fileResult, len(args))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(analyzeWorkers)

	for i, path := range args {
		g.Go(func() error {
			results[i] = analyzeFile(path, policy)
			return nil
		})
	}
	// Workers record per-file errors instead of failing the group
	_ = g.Wait()

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		for _, res := range results {
			if res.err != nil {
				printer.PrintError(res.File, res.err)
				continue
			}
			printer.PrintAssessment(res.File, res.Assessment)
		}
	}

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to analyze", failed, len(args))
	}
	return nil
}

// analyzeFile extracts, normalizes and scores a single resume file.
func analyzeFile(path string, policy analysis.ScoringPolicy) fileResult {
	res := fileResult{File: filepath.Base(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		return res.withError(fmt.Errorf("failed to read file: %w", err))
	}

	// Media type is unknown for local files; extraction falls back to
	// the file extension.
	text, err := extraction.Extract(filepath.Base(path), "", data)
	if err != nil {
		return res.withError(err)
	}

	text = extraction.Normalize(text)
	if len(text) < extraction.MinResumeChars {
		return res.withError(fmt.Errorf("resume content is too short to analyze"))
	}

	assessment := policy.Evaluate(text, 0)
	res.Assessment = &assessment
	return res
}

func (r fileResult) withError(err error) fileResult {
	r.err = err
	r.Error = err.Error()
	return r
}
