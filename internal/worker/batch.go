package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/textsoap/soap/internal/model"
)

// Analyzer defines the interface for analyzing a text file
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Report, error)
}

// AnalyzeJob pairs one input path with the analyzer that will process it.
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

func (j AnalyzeJob) analyze(ctx context.Context) *AnalyzeResult {
	report, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &AnalyzeResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// AnalyzeResult carries the report for one path, or the error that
// prevented it.
type AnalyzeResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// BatchProcessor analyzes multiple files concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes multiple files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(AnalyzeJob{Path: path, Analyzer: b.analyzer})
	}

	return pool.Wait()
}

// ProcessManifest reads file paths from a manifest and analyzes them concurrently
func (b *BatchProcessor) ProcessManifest(ctx context.Context, manifestPath string) ([]*AnalyzeResult, error) {
	paths, err := ReadPathsFromFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a manifest (one per line)
func ReadPathsFromFile(manifestPath string) ([]string, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Deduplicate paths
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
