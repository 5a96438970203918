package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/textsoap/soap/internal/model"
)

// Provider defines the interface for rewrite-suggestion backends.
// Providers are strictly advisory: their output is attached to reports
// after analysis and never feeds back into any detector or score.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Rewrite generates a cleaned-up rewrite of flagged text
	Rewrite(ctx context.Context, req RewriteRequest) (*RewriteResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// RewriteRequest contains the input for a rewrite suggestion.
type RewriteRequest struct {
	// Text is the original text buffer
	Text string

	// Issues lists what the rule engine flagged (detector labels,
	// grammar error count) so the model knows what to address
	Issues []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// RewriteResponse contains the provider's suggestion.
type RewriteResponse struct {
	// Rewrite is the suggested replacement text
	Rewrite string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 500,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config.
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:  mc.Provider,
		Model:     mc.Model,
		APIKey:    mc.APIKey,
		BaseURL:   mc.BaseURL,
		Timeout:   mc.Timeout,
		MaxTokens: mc.MaxTokens,
	}
}

// BuildPrompt constructs the default rewrite prompt.
func BuildPrompt(text string, issues []string) string {
	issueList := "(none flagged; tidy wording only)"
	if len(issues) > 0 {
		issueList = "- " + strings.Join(issues, "\n- ")
	}

	return fmt.Sprintf(`Rewrite the text below so it reads clean and neutral.

RULES:
1. Preserve the meaning; do not add or drop information.
2. Replace slang, meme vocabulary, and insults with plain wording.
3. Fix grammar faults.
4. Return ONLY the rewritten text, no commentary.

Flagged issues:
%s

Text:
%s`, issueList, text)
}
