package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1) // 100 rps, burst 1
	ctx := context.Background()

	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different provider should also work
	if err := limiter.Wait(ctx, "ollama"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_WaitWithDelay(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	start := time.Now()
	err := limiter.WaitWithDelay(ctx, "openai", 50*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitWithDelay failed: %v", err)
	}

	duration := time.Since(start)
	if duration < 50*time.Millisecond {
		t.Errorf("expected delay >= 50ms, got %v", duration)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	// First request ok
	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// Burst of 1 is consumed; Allow() must fail without waiting.
	if limiter.Allow("openai") {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Different provider has its own bucket
	if !limiter.Allow("ollama") {
		t.Errorf("expected allow for other provider")
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	limiter := NewLimiter(10, 10) // fast default
	provider := "openai"

	// Set strict limit for specific provider
	limiter.SetProviderRate(provider, 0.1, 1) // very slow

	// First request passes (burst 1)
	if !limiter.Allow(provider) {
		t.Errorf("first request should pass")
	}

	// Second request fails
	if limiter.Allow(provider) {
		t.Errorf("second request should fail")
	}

	// Other provider still fast
	if !limiter.Allow("ollama") {
		t.Errorf("other provider should pass")
	}
}
