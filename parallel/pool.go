// File: pool.go
// Role: one-shot bounded scatter-gather over a fixed task set.
package parallel

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrNilTask indicates that a nil task function was passed to Map.
var ErrNilTask = errors.New("parallel: task function is nil")

// Map applies fn to every item using at most workers concurrent goroutines
// and returns the results aligned with the input order.
//
// workers <= 0 selects one worker per available execution unit
// (runtime.GOMAXPROCS). Map blocks until every dispatched task has finished;
// the first error returned by any task aborts the call and no partial
// results are returned. Tasks must not depend on each other — Map provides
// no ordering guarantees between them.
//
// Complexity: O(len(items)) task dispatches, memory O(len(items)) for results.
func Map[T, R any](items []T, workers int, fn func(T) (R, error)) ([]R, error) {
	if fn == nil {
		return nil, ErrNilTask
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]R, len(items))

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, item := range items {
		eg.Go(func() error {
			r, err := fn(item)
			if err != nil {
				return err
			}
			out[i] = r

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
