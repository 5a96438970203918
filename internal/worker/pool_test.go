package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/textsoap/soap/internal/model"
)

// stubAnalyzer drives the pool tests without a real pipeline behind it.
type stubAnalyzer struct {
	delay   time.Duration
	fail    bool
	calls   int32
	onStart func()
	onEnd   func()
}

func (a *stubAnalyzer) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	atomic.AddInt32(&a.calls, 1)
	if a.onStart != nil {
		a.onStart()
	}
	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			if a.onEnd != nil {
				a.onEnd()
			}
			return nil, ctx.Err()
		}
	}
	if a.onEnd != nil {
		a.onEnd()
	}
	if a.fail {
		return nil, errors.New("analyze failed")
	}
	return &model.Report{Source: path}, nil
}

func TestNewPool(t *testing.T) {
	p1 := NewPool(5)
	if p1.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p1.workers)
	}

	p2 := NewPool(0)
	if p2.workers != 1 {
		t.Errorf("expected default 1 worker for 0 input, got %d", p2.workers)
	}

	p3 := NewPool(-1)
	if p3.workers != 1 {
		t.Errorf("expected default 1 worker for negative input, got %d", p3.workers)
	}
}

func TestPool_Execution(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	analyzer := &stubAnalyzer{}
	count := 10

	for i := 0; i < count; i++ {
		pool.Submit(AnalyzeJob{Path: "a.txt", Analyzer: analyzer})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}

	if atomic.LoadInt32(&analyzer.calls) != int32(count) {
		t.Errorf("expected %d analyses, got %d", count, analyzer.calls)
	}
}

func TestPool_Concurrency(t *testing.T) {
	workers := 10
	pool := NewPool(workers)
	pool.Start()

	var current int32
	var maxConcurrent int32
	var completed int32
	var mu sync.Mutex

	analyzer := &stubAnalyzer{
		delay: 10 * time.Millisecond,
		onStart: func() {
			curr := atomic.AddInt32(&current, 1)
			mu.Lock()
			if curr > maxConcurrent {
				maxConcurrent = curr
			}
			mu.Unlock()
		},
		onEnd: func() {
			atomic.AddInt32(&current, -1)
			atomic.AddInt32(&completed, 1)
		},
	}

	totalJobs := 50
	for i := 0; i < totalJobs; i++ {
		pool.Submit(AnalyzeJob{Path: "a.txt", Analyzer: analyzer})
	}

	pool.Wait()

	if atomic.LoadInt32(&completed) != int32(totalJobs) {
		t.Errorf("expected %d completed jobs, got %d", totalJobs, completed)
	}

	mu.Lock()
	max := maxConcurrent
	mu.Unlock()

	if max > int32(workers) {
		t.Errorf("max concurrency %d exceeded workers %d", max, workers)
	}

	if max <= 1 {
		t.Logf("Warning: max concurrency was %d, expected > 1", max)
	}
}

func TestPool_ErrorHandling(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	pool.Submit(AnalyzeJob{Path: "bad.txt", Analyzer: &stubAnalyzer{fail: true}})
	pool.Submit(AnalyzeJob{Path: "good.txt", Analyzer: &stubAnalyzer{}})

	results := pool.Wait()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	failures := 0
	for _, res := range results {
		if res.Error != nil {
			failures++
			if res.Path != "bad.txt" {
				t.Errorf("error reported for wrong path %q", res.Path)
			}
		}
	}

	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submit after shutdown should not panic or block
	done := make(chan struct{})
	go func() {
		pool.Submit(AnalyzeJob{Path: "a.txt", Analyzer: &stubAnalyzer{}})
		close(done)
	}()

	select {
	case <-done:
		// Submit returned without blocking
	case <-time.After(1 * time.Second):
		t.Fatal("Submit after shutdown blocked")
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	started := make(chan struct{})
	var once sync.Once

	pool.Submit(AnalyzeJob{
		Path: "a.txt",
		Analyzer: &stubAnalyzer{
			delay:   200 * time.Millisecond,
			onStart: func() { once.Do(func() { close(started) }) },
		},
	})

	<-started

	pool.Shutdown()

	// Shutdown must leave the results channel closed
	done := make(chan struct{})
	go func() {
		for range pool.results {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Shutdown timed out")
	}
}
