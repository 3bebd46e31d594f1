package scrape

import (
	"context"
	"sync"

	"github.com/fwojciec/concursos"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency is used when Batch.Concurrency is not positive.
const DefaultBatchConcurrency = 3

// BatchResult is the outcome of scraping one state in a batch.
type BatchResult struct {
	State string
	Data  *concursos.ConcursoData
	Err   error
}

// BatchProgressFunc is called once per state as it completes.
type BatchProgressFunc func(result BatchResult, completed, total int)

// Batch scrapes several states as independent requests.
type Batch struct {
	Service     concursos.ConcursoService
	Limiter     *Limiter
	Concurrency int
	Progress    BatchProgressFunc
}

// Run scrapes every state and returns one result per state in input order.
// A failing state does not stop the others. The returned error is non-nil
// only when ctx ends before the batch completes; results gathered so far are
// still returned. Progress calls are serialized.
func (b *Batch) Run(ctx context.Context, states []string) ([]BatchResult, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]BatchResult, len(states))

	var (
		mu        sync.Mutex
		completed int
	)

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, state := range states {
		g.Go(func() error {
			result := BatchResult{State: state}
			if b.Limiter != nil {
				if err := b.Limiter.Wait(ctx); err != nil {
					result.Err = err
				}
			}
			if result.Err == nil {
				result.Data, result.Err = b.Service.Scrape(ctx, state)
			}
			results[i] = result

			if b.Progress != nil {
				mu.Lock()
				completed++
				b.Progress(result, completed, len(states))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, ctx.Err()
}
