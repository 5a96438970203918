package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/textsoap/soap/internal/cache"
	"github.com/textsoap/soap/internal/classify"
	"github.com/textsoap/soap/internal/extract"
	"github.com/textsoap/soap/internal/filter"
	"github.com/textsoap/soap/internal/grammar"
	"github.com/textsoap/soap/internal/llm"
	"github.com/textsoap/soap/internal/model"
	"github.com/textsoap/soap/internal/readability"
	"github.com/textsoap/soap/internal/style"
	"github.com/textsoap/soap/internal/worker"
)

// detectors is the fixed report order for classifier verdicts.
var detectors = []struct {
	label string
	fn    func(string) bool
}{
	{"ragebait", classify.DetectRagebait},
	{"clickbait", classify.DetectClickbait},
	{"spam", classify.DetectSpam},
	{"woke", classify.DetectWoke},
	{"bot", classify.DetectBot},
	{"sarcasm", classify.DetectSarcasm},
	{"formal", classify.DetectFormal},
	{"casual", classify.DetectCasual},
	{"snowflake", classify.DetectSnowflake},
	{"offensive", classify.DetectOffensive},
	{"hype", classify.DetectHype},
	{"quality", classify.DetectQuality},
	{"political", classify.DetectPolitical},
	{"conspiracy", classify.DetectConspiracy},
	{"marketing", classify.DetectMarketing},
	{"technobabble", classify.DetectTechnobabble},
	{"exaggeration", classify.DetectExaggeration},
}

// Pipeline orchestrates the complete analysis of one text buffer.
type Pipeline struct {
	cache    cache.Cache
	rewriter *llm.Rewriter // Optional LLM rewriter (nil if disabled)
	limiter  *worker.Limiter
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	// Create LLM rewriter if configured
	var rewriter *llm.Rewriter
	if cfg.LLM.Provider != "" {
		llmConfig := llm.ConfigFromModel(cfg.LLM)
		r, err := llm.NewRewriter(llmConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			rewriter = r
		}
	}

	var reportCache cache.Cache
	if cfg.Cache.Enabled {
		reportCache = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	return &Pipeline{
		cache:    reportCache,
		rewriter: rewriter,
		limiter:  worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}
}

// Analyze runs the full rule engine over text and builds a report.
// The subject names the buffer (file name or "stdin"); source is the
// path it came from, if any.
func (p *Pipeline) Analyze(ctx context.Context, subject, source, text string) (*model.Report, error) {
	// 1. Strip markup when the input is HTML
	if p.config.Analysis.HTML {
		stripped, err := extract.StripHTML(text)
		if err != nil {
			return nil, fmt.Errorf("strip html: %w", err)
		}
		text = stripped
	}

	// 2. Serve from cache when the same buffer was analyzed recently
	key := cache.Key(text)
	if p.cache != nil {
		if report, ok := p.cache.Get(key); ok {
			return report, nil
		}
	}

	// 3. Classifier verdicts
	det := make([]model.Detection, 0, len(detectors))
	for _, d := range detectors {
		det = append(det, model.Detection{Label: d.label, Matched: d.fn(text)})
	}

	// 4. Grammar
	grammarErrors := grammar.Check(text)
	corrected := ""
	if p.config.Analysis.Correct {
		if fixed := grammar.Correct(text); fixed != text {
			corrected = fixed
		}
	}

	// 5. Readability and style
	read := readability.Analyze(text)
	sentences := style.SplitSentences(text)

	// 6. Build report (without LLM rewrite yet)
	report := &model.Report{
		Subject:        subject,
		Source:         source,
		AnalyzedAt:     time.Now().UTC(),
		Tone:           classify.DetectTone(text),
		VocabularyTone: classify.ContextualTone(text),
		Detections:     det,
		OffensiveCount: classify.CountOffensive(text),
		SlangCount:     classify.CountSlang(text),
		GrammarErrors:  grammarErrors,
		Corrected:      corrected,
		Readability:    model.ScoreResult{Value: read.Value, Label: read.Label},
		Style: model.StyleResult{
			Label:        style.Analyze(text),
			PassiveRatio: style.PassiveRatio(text),
		},
		Sentences: len(sentences),
		Summary:   style.Summarize(text),
	}
	if p.config.Analysis.Sanitize {
		report.Sanitized = filter.Sanitize(text)
	}

	// 7. Generate LLM rewrite if enabled (AFTER analysis, never affects verdicts)
	if p.rewriter != nil && p.rewriter.IsEnabled() {
		report.LLM = p.generateRewrite(ctx, text, report)
	}

	if p.cache != nil {
		_ = p.cache.Set(key, report, p.config.Cache.TTL)
	}

	return report, nil
}

// AnalyzeFile reads a file and analyzes its contents. Satisfies the
// batch worker's Analyzer interface.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return p.Analyze(ctx, filepath.Base(path), path, string(data))
}

// generateRewrite asks the provider for a rewrite, throttled per provider.
// Failures are recorded on the report instead of failing the analysis.
func (p *Pipeline) generateRewrite(ctx context.Context, text string, report *model.Report) *model.LLMRewrite {
	provider := p.config.LLM.Provider
	if err := p.limiter.Wait(ctx, provider); err != nil {
		return &model.LLMRewrite{Enabled: true, Provider: provider, Warning: err.Error()}
	}

	rewrite, err := p.rewriter.GenerateRewrite(ctx, text, rewriteIssues(report))
	if err != nil {
		// Don't fail the entire analysis, just record the warning
		return &model.LLMRewrite{Enabled: true, Provider: provider, Warning: err.Error()}
	}
	return rewrite
}

// rewriteIssues summarizes what the rule engine flagged, for the prompt.
func rewriteIssues(report *model.Report) []string {
	var issues []string
	for _, label := range report.Matched() {
		issues = append(issues, "flagged as "+label)
	}
	if report.OffensiveCount > 0 {
		issues = append(issues, fmt.Sprintf("%d offensive terms", report.OffensiveCount))
	}
	if report.SlangCount > 0 {
		issues = append(issues, fmt.Sprintf("%d slang terms", report.SlangCount))
	}
	if report.GrammarErrors > 0 {
		issues = append(issues, fmt.Sprintf("%d grammar faults", report.GrammarErrors))
	}
	return issues
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	// Render JSON
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	// Render Markdown
	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	// Print summary to stdout
	p.renderer.RenderSummary(report)

	return nil
}
