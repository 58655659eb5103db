// Package fanout runs a function over a slice with bounded concurrency. The
// event dispatcher uses it to deliver one event to every sink in parallel
// without spawning an unbounded number of goroutines.
package fanout

import (
	"context"
	"sync"
)

// Result is the per-item outcome: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run applies fn to every item with at most maxWorkers goroutines running at
// once. The returned slice has one Result per item, in input order.
//
// A goroutine still waiting for a worker slot when ctx is canceled records
// ctx.Err() without calling fn. A goroutine that already holds a slot runs fn
// to completion; fn observes cancellation through its own ctx if it cares.
//
// Run blocks until everything finishes. Empty items returns an empty non-nil
// slice. maxWorkers must be at least 1; values above len(items) just mean no
// slot contention.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}
