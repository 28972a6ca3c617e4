package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze resume files without a server",
	Long:  "Extract text from one or more resume files, run the analysis pipeline, and print one JSON report per file to stdout.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeJDFile      string
	analyzeCategory    string
	analyzeLexicon     string
	analyzeConcurrency int
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd", "", "Path to a job description text file for keyword matching")
	analyzeCmd.Flags().StringVar(&analyzeCategory, "type", "", "Suggestion category: ats, verbs, star, keywords, general (default general)")
	analyzeCmd.Flags().StringVar(&analyzeLexicon, "lexicon", "", "Path to a lexicon JSON file (default: embedded lexicon)")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 4, "Number of files to analyze in parallel")

	rootCmd.AddCommand(analyzeCmd)
}

// fileReport is one file's entry in the batch output.
type fileReport struct {
	File        string                  `json:"file"`
	Analysis    *analysis.Result        `json:"analysis,omitempty"`
	Keywords    *analysis.KeywordReport `json:"keywords,omitempty"`
	Suggestions *analysis.SuggestionSet `json:"suggestions,omitempty"`
	Error       string                  `json:"error,omitempty"`
}

func runAnalyze(_ *cobra.Command, args []string) error {
	category, err := analysis.ParseCategory(analyzeCategory)
	if err != nil {
		return err
	}

	lex := lexicon.Default()
	if analyzeLexicon != "" {
		lex, err = lexicon.LoadFile(analyzeLexicon)
		if err != nil {
			return fmt.Errorf("failed to load lexicon: %w", err)
		}
	}
	analyzer := analysis.New(lex)

	var jobDescription string
	if analyzeJDFile != "" {
		data, err := os.ReadFile(analyzeJDFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(data)
	}

	concurrency := analyzeConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	reports := make([]fileReport, len(args))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range args {
		g.Go(func() error {
			report := analyzeFile(analyzer, path, category, jobDescription)
			mu.Lock()
			reports[i] = report
			mu.Unlock()
			return nil
		})
	}
	// Per-file failures are reported inline, never as a group error.
	_ = g.Wait()

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}

	for _, r := range reports {
		if r.Error != "" {
			return fmt.Errorf("one or more files failed to analyze")
		}
	}
	return nil
}

func analyzeFile(analyzer *analysis.Analyzer, path string, category analysis.Category, jobDescription string) fileReport {
	report := fileReport{File: path}

	data, err := os.ReadFile(path)
	if err != nil {
		report.Error = fmt.Sprintf("failed to read file: %v", err)
		return report
	}

	content, err := extract.Text(data, extract.MimeForExtension(filepath.Ext(path)))
	if err != nil {
		report.Error = fmt.Sprintf("failed to extract text: %v", err)
		return report
	}

	result := analyzer.Analyze(content)
	report.Analysis = &result

	if jobDescription != "" {
		kw := analyzer.MatchKeywords(analyzer.Tokenize(content), analyzer.Tokenize(jobDescription))
		report.Keywords = &kw
	}

	set, err := analyzer.Suggest(category, content, jobDescription)
	if err != nil {
		report.Error = fmt.Sprintf("failed to generate suggestions: %v", err)
		return report
	}
	report.Suggestions = &set

	return report
}
