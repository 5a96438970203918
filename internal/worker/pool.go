package worker

import (
	"context"
	"sync"
)

// Pool fans file analyses out across a fixed set of goroutines. Jobs go in
// through Submit, results come back out of Wait. Shutdown cancels whatever
// is still in flight.
type Pool struct {
	workers int
	jobs    chan AnalyzeJob
	results chan *AnalyzeResult
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	once    sync.Once
}

// NewPool sizes a pool for the given number of concurrent analyses.
// Anything below one is raised to one.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers: workers,
		jobs:    make(chan AnalyzeJob, workers*2),
		results: make(chan *AnalyzeResult, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			res := job.analyze(p.ctx)
			select {
			case p.results <- res:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues one analysis. After Shutdown the job is silently dropped.
func (p *Pool) Submit(job AnalyzeJob) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobs <- job:
	}
}

// Wait closes the queue, lets the workers drain it, and collects every
// result. Call it once, after the last Submit.
func (p *Pool) Wait() []*AnalyzeResult {
	close(p.jobs)

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []*AnalyzeResult
	for res := range p.results {
		results = append(results, res)
	}
	return results
}

// Shutdown cancels in-flight analyses and releases the workers.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.once.Do(func() {
		close(p.results)
	})
}
