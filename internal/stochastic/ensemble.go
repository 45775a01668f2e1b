package stochastic

import (
	"context"
	"sync"
)

// Ensemble runs independent replications of a process in parallel.
// Replication i is seeded with seedStart+i, so each run owns its own
// generator state and runs never interfere.
type Ensemble struct {
	proc      Process
	numRuns   int
	seedStart int64
}

func NewEnsemble(proc Process, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{proc: proc, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, n int) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		default:
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = e.proc.Simulate(n, e.seedStart+int64(idx))
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
