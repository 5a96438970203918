package llm

import (
	"context"
	"fmt"

	"github.com/textsoap/soap/internal/model"
)

// Rewriter wraps a Provider and produces report attachments. A nil
// Rewriter (or one whose provider is unavailable) is simply skipped.
type Rewriter struct {
	provider Provider
	config   Config
}

// NewRewriter creates a rewriter for the configured provider.
// Returns nil when no provider is configured.
func NewRewriter(config Config) (*Rewriter, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}
	return &Rewriter{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured.
func (r *Rewriter) IsEnabled() bool {
	return r != nil && r.provider != nil
}

// GenerateRewrite asks the provider for a cleaned-up version of text.
// The result is advisory and must be attached to the report only after the
// rule engine has finished.
func (r *Rewriter) GenerateRewrite(ctx context.Context, text string, issues []string) (*model.LLMRewrite, error) {
	if !r.IsEnabled() {
		return nil, nil
	}

	resp, err := r.provider.Rewrite(ctx, RewriteRequest{
		Text:      text,
		Issues:    issues,
		Model:     r.config.Model,
		MaxTokens: r.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate rewrite: %w", err)
	}

	return &model.LLMRewrite{
		Enabled:  true,
		Provider: r.provider.Name(),
		Model:    resp.Model,
		Rewrite:  resp.Rewrite,
	}, nil
}
