package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/textsoap/soap/internal/model"
)

const reportFooter = "Generated by soap. Verdicts come from the rule engine; LLM output is advisory only."

// Renderer writes reports as JSON, Markdown, and terminal summaries.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON to the given path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderMarkdown writes the report as a Markdown document to the given path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Analysis: %s\n\n", report.Subject)
	if report.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n", report.Source)
	}
	fmt.Fprintf(&b, "Analyzed: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))

	b.WriteString("## Verdicts\n\n")
	fmt.Fprintf(&b, "- Tone: **%s**\n", report.Tone)
	fmt.Fprintf(&b, "- Vocabulary: **%s** (%d offensive, %d slang)\n",
		report.VocabularyTone, report.OffensiveCount, report.SlangCount)
	if matched := report.Matched(); len(matched) > 0 {
		fmt.Fprintf(&b, "- Flagged: %s\n", strings.Join(matched, ", "))
	} else {
		b.WriteString("- Flagged: none\n")
	}
	b.WriteString("\n")

	b.WriteString("## Quality\n\n")
	fmt.Fprintf(&b, "- Readability: %d/100 (%s)\n", report.Readability.Value, report.Readability.Label)
	fmt.Fprintf(&b, "- Style: %s, %d%% passive\n", report.Style.Label, report.Style.PassiveRatio)
	fmt.Fprintf(&b, "- Sentences: %d\n", report.Sentences)
	fmt.Fprintf(&b, "- Grammar faults: %d\n", report.GrammarErrors)
	b.WriteString("\n")

	if report.Summary != "" {
		fmt.Fprintf(&b, "## Summary\n\n%s\n\n", report.Summary)
	}
	if report.Corrected != "" {
		fmt.Fprintf(&b, "## Corrected\n\n%s\n\n", report.Corrected)
	}
	if report.Sanitized != "" {
		fmt.Fprintf(&b, "## Sanitized\n\n%s\n\n", report.Sanitized)
	}

	if report.LLM != nil && report.LLM.Enabled {
		fmt.Fprintf(&b, "## LLM Rewrite (advisory)\n\n")
		if report.LLM.Warning != "" {
			fmt.Fprintf(&b, "_unavailable: %s_\n\n", report.LLM.Warning)
		} else {
			fmt.Fprintf(&b, "Provider: %s (%s)\n\n%s\n\n", report.LLM.Provider, report.LLM.Model, report.LLM.Rewrite)
		}
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n%s\n", reportFooter)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderSummary prints a short human-readable summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", report.Subject)
	fmt.Printf("  tone: %s  vocabulary: %s\n", report.Tone, report.VocabularyTone)

	if matched := report.Matched(); len(matched) > 0 {
		fmt.Printf("  flagged: %s\n", strings.Join(matched, ", "))
	}

	fmt.Printf("  readability: %d/100 (%s)  style: %s  passive: %d%%\n",
		report.Readability.Value, report.Readability.Label,
		report.Style.Label, report.Style.PassiveRatio)
	fmt.Printf("  sentences: %d  grammar faults: %d  offensive: %d  slang: %d\n",
		report.Sentences, report.GrammarErrors, report.OffensiveCount, report.SlangCount)

	if report.Summary != "" {
		fmt.Printf("  summary: %s\n", report.Summary)
	}
	if report.LLM != nil && report.LLM.Enabled && report.LLM.Warning == "" {
		fmt.Printf("  llm rewrite (%s): %s\n", report.LLM.Provider, report.LLM.Rewrite)
	}
}
