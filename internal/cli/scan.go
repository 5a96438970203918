package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/textsoap/soap/internal/model"
	"github.com/textsoap/soap/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	htmlInput   bool
	correct     bool
	noSanitize  bool
	noCache     bool
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Analyze a text buffer and generate a report",
	Long: `Scan runs the full rule engine over one text buffer:
- Classify tone and vocabulary (ragebait, clickbait, spam, slang, ...)
- Count offensive and meme-speak terms and mask them
- Count grammar faults and optionally fix the common ones
- Measure readability, passive voice, and sentence structure

Reads from stdin when no file is given.

Example:
  soap scan comment.txt
  cat comment.txt | soap scan
  soap scan page.html --html --json report.json --md report.md
  soap scan comment.txt --llm --llm-provider openai`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	scanCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Analysis flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout (matters only with --llm)")
	scanCmd.Flags().BoolVar(&htmlInput, "html", false, "treat input as HTML and strip markup first")
	scanCmd.Flags().BoolVar(&correct, "correct", false, "include grammar-corrected text in the report")
	scanCmd.Flags().BoolVar(&noSanitize, "no-sanitize", false, "omit sanitized text from the report")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache")
	scanCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	scanCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM rewrite suggestion")
	scanCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	scanCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the runtime configuration from flags and environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Analysis.HTML = htmlInput
	cfg.Analysis.Correct = correct
	cfg.Analysis.Sanitize = !noSanitize
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	// Configure LLM if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		// Get API key from environment
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			baseURL := os.Getenv("OLLAMA_BASE_URL")
			if baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	subject, source, text, err := readInput(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", subject)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	report, err := p.Analyze(ctx, subject, source, text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Tone: %s\n", report.Tone)
		fmt.Fprintf(os.Stderr, "✓ Flagged %d offensive and %d slang terms\n", report.OffensiveCount, report.SlangCount)
		fmt.Fprintf(os.Stderr, "✓ Readability: %d/100\n", report.Readability.Value)
		if report.LLM != nil && report.LLM.Enabled && report.LLM.Warning == "" {
			fmt.Fprintf(os.Stderr, "✓ Generated LLM rewrite using %s/%s\n", report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Render outputs
	if err := p.RenderReport(report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
