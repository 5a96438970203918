package llm

import (
	"strings"
	"testing"
)

func TestNewProvider(t *testing.T) {
	// Disabled when no provider is configured
	p, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("empty provider should not error: %v", err)
	}
	if p != nil {
		t.Error("empty provider should disable rewriting")
	}

	// Unknown provider
	if _, err := NewProvider(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("expected error for unknown provider")
	}

	// OpenAI requires an API key
	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("expected error for openai without API key")
	}

	p, err = NewProvider(Config{Provider: "openai", APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("openai with key failed: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("expected provider name openai, got %s", p.Name())
	}

	// Provider names are case-insensitive
	p, err = NewProvider(Config{Provider: "Ollama", Model: "llama3.1:8b"})
	if err != nil {
		t.Fatalf("ollama failed: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("expected provider name ollama, got %s", p.Name())
	}
}

func TestNewRewriter_Disabled(t *testing.T) {
	r, err := NewRewriter(Config{})
	if err != nil {
		t.Fatalf("NewRewriter failed: %v", err)
	}
	if r != nil {
		t.Error("expected nil rewriter when no provider is configured")
	}
	if r.IsEnabled() {
		t.Error("nil rewriter must report disabled")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("you idiot", []string{"flagged as offensive", "1 grammar fault"})

	if !strings.Contains(prompt, "you idiot") {
		t.Error("prompt missing source text")
	}
	if !strings.Contains(prompt, "flagged as offensive") {
		t.Error("prompt missing flagged issue")
	}
	if !strings.Contains(prompt, "1 grammar fault") {
		t.Error("prompt missing grammar issue")
	}

	empty := BuildPrompt("clean text", nil)
	if !strings.Contains(empty, "none flagged") {
		t.Error("prompt for clean text should note nothing was flagged")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "" {
		t.Error("rewriting must be disabled by default")
	}
	if cfg.Timeout != 30 || cfg.MaxTokens != 500 {
		t.Errorf("unexpected defaults: timeout=%d maxTokens=%d", cfg.Timeout, cfg.MaxTokens)
	}
}
