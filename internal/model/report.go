package model

import "time"

// Report is the complete analysis of one text buffer.
type Report struct {
	Subject    string    `json:"subject"`          // file name, or "stdin"
	Source     string    `json:"source,omitempty"` // path the text came from
	AnalyzedAt time.Time `json:"analyzed_at"`

	Tone           string `json:"tone"`            // ragebait / formal / sarcastic / casual
	VocabularyTone string `json:"vocabulary_tone"` // neutral / slang / offensive / mixed

	Detections []Detection `json:"detections"`

	OffensiveCount int `json:"offensive_count"`
	SlangCount     int `json:"slang_count"`

	GrammarErrors int    `json:"grammar_errors"`
	Corrected     string `json:"corrected,omitempty"` // only set when corrections applied

	Readability ScoreResult `json:"readability"`
	Style       StyleResult `json:"style"`

	Sentences int    `json:"sentences"`
	Summary   string `json:"summary,omitempty"`
	Sanitized string `json:"sanitized,omitempty"`

	// LLM holds an optional machine-generated rewrite suggestion. It is
	// produced after analysis and never affects any field above.
	LLM *LLMRewrite `json:"llm,omitempty"`
}

// Detection records one classifier verdict.
type Detection struct {
	Label   string `json:"label"`
	Matched bool   `json:"matched"`
}

// ScoreResult is a bucketed 0-100 score.
type ScoreResult struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// StyleResult captures the structural analysis of the text.
type StyleResult struct {
	Label        string `json:"label"` // concise / verbose / neutral
	PassiveRatio int    `json:"passive_ratio"`
}

// LLMRewrite is an optional rewrite suggestion from a language model.
// It is advisory output only, clearly separated from the rule engine.
type LLMRewrite struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	Rewrite  string `json:"rewrite,omitempty"`
	Warning  string `json:"warning,omitempty"`
}

// Matched returns the labels of every positive detection.
func (r *Report) Matched() []string {
	var labels []string
	for _, d := range r.Detections {
		if d.Matched {
			labels = append(labels, d.Label)
		}
	}
	return labels
}
