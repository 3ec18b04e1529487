package execution

import (
	"context"
	"sync"
	"time"

	"gtp/internal/domain"
	"gtp/internal/ui"
)

// Pool drives an Executor over a selection of descriptors.
//
// With one worker it walks the sequence strictly in order, which is the
// engine's baseline contract: execution order == report order == selection
// order. With more workers each test runs on its own goroutine and the
// results are put back into canonical selection order before they are
// returned, since completion order under parallelism is nondeterministic.
type Pool struct {
	runner   Executor
	workers  int
	progress *ui.ProgressBar
}

// NewPool creates a Pool running tests on the given number of workers
func NewPool(runner Executor, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{runner: runner, workers: workers}
}

// SetProgress sets the progress bar updated as tests complete
func (p *Pool) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Execute runs all descriptors (no fail-fast)
func (p *Pool) Execute(descs []domain.TestDescriptor) ([]Result, time.Duration) {
	return p.ExecuteWithOptions(descs, false)
}

// ExecuteWithOptions runs the descriptors with optional fail-fast
// (stop scheduling new tests after the first failure).
func (p *Pool) ExecuteWithOptions(descs []domain.TestDescriptor, failFast bool) ([]Result, time.Duration) {
	if len(descs) == 0 {
		return nil, 0
	}
	start := time.Now()
	if p.workers == 1 {
		results := p.executeSequential(descs, failFast)
		return results, time.Since(start)
	}
	results := p.executeParallel(descs, failFast)
	return results, time.Since(start)
}

// executeSequential walks the sequence one descriptor at a time
func (p *Pool) executeSequential(descs []domain.TestDescriptor, failFast bool) []Result {
	var results []Result
	var done, passed, failed int
	for _, desc := range descs {
		outcome := p.runner.Run(desc)
		results = append(results, Result{Descriptor: desc, Outcome: outcome})
		done++
		switch outcome.Status {
		case domain.StatusPassed:
			passed++
		case domain.StatusFailed:
			failed++
		}
		if p.progress != nil {
			p.progress.Update(done, passed, failed)
		}
		if failFast && outcome.Status == domain.StatusFailed {
			break
		}
	}
	if p.progress != nil {
		p.progress.Finish()
	}
	return results
}

type job struct {
	index int
	desc  domain.TestDescriptor
}

type indexedResult struct {
	index  int
	result Result
}

// executeParallel fans the sequence out to workers and reorders the
// completed outcomes back to selection order.
func (p *Pool) executeParallel(descs []domain.TestDescriptor, failFast bool) []Result {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobs := make(chan job)
	results := make(chan indexedResult, len(descs))

	go func() {
		defer close(jobs)
		for i, desc := range descs {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{index: i, desc: desc}:
			}
		}
	}()

	var mu sync.Mutex
	var done, passed, failed int

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				outcome := p.runner.Run(j.desc)
				results <- indexedResult{index: j.index, result: Result{Descriptor: j.desc, Outcome: outcome}}
				mu.Lock()
				done++
				switch outcome.Status {
				case domain.StatusPassed:
					passed++
				case domain.StatusFailed:
					failed++
				}
				if p.progress != nil {
					p.progress.Update(done, passed, failed)
				}
				if failFast && outcome.Status == domain.StatusFailed {
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Reorder to canonical selection order; under fail-fast some slots may
	// never complete, those are simply absent from the report.
	slots := make([]*Result, len(descs))
	for ir := range results {
		r := ir.result
		slots[ir.index] = &r
	}
	var ordered []Result
	for _, slot := range slots {
		if slot != nil {
			ordered = append(ordered, *slot)
		}
	}
	if p.progress != nil {
		p.progress.Finish()
	}
	return ordered
}
