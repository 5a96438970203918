package model

import "time"

// Config holds the full runtime configuration.
type Config struct {
	Analysis     AnalysisConfig     `yaml:"analysis" json:"analysis"`
	Cache        CacheConfig        `yaml:"cache" json:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" json:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" json:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" json:"output"`
	LLM          LLMConfig          `yaml:"llm" json:"llm"`
}

// AnalysisConfig controls how input text is interpreted.
type AnalysisConfig struct {
	HTML     bool `yaml:"html" json:"html"`         // strip markup before analysis
	Sanitize bool `yaml:"sanitize" json:"sanitize"` // include sanitized text in reports
	Correct  bool `yaml:"correct" json:"correct"`   // include grammar-corrected text in reports
}

// CacheConfig controls report memoization.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitingConfig throttles outbound LLM API requests.
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig configures the optional rewrite provider.
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // openai, ollama, "" (disabled)
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Sanitize: true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 500,
		},
	}
}
