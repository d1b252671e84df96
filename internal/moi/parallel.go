package moi

import (
	"runtime"
	"sync"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

// GeneBatch holds one gene's variants ready for inheritance testing. Each
// batch is independent of every other gene's, which is the engine's natural
// parallelism axis.
type GeneBatch struct {
	Seq      int
	Gene     string
	Variants []*variant.Variant
}

// BatchResult holds the findings for a single gene batch.
type BatchResult struct {
	Seq      int
	Gene     string
	Findings []*variant.ReportedVariant
	Err      error
}

// ParallelEvaluate evaluates gene batches using a pool of workers.
// Runners hold no mutable state after construction, so the lookup is shared
// across workers. Results arrive in completion order; use OrderedCollect to
// consume them in sequence-number order. If workers is 0, runtime.NumCPU()
// is used.
func ParallelEvaluate(
	batches <-chan GeneBatch,
	evaluate func(GeneBatch) ([]*variant.ReportedVariant, error),
	workers int,
) <-chan BatchResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan BatchResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for batch := range batches {
				findings, err := evaluate(batch)
				results <- BatchResult{
					Seq:      batch.Seq,
					Gene:     batch.Gene,
					Findings: findings,
					Err:      err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order, buffering
// out-of-order results until the next expected sequence number arrives.
// Blocks until the results channel is closed.
func OrderedCollect(results <-chan BatchResult, fn func(BatchResult) error) error {
	pending := make(map[int]BatchResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
