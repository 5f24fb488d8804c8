package execution

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// zipParallel runs work over every item concurrently and returns results in
// the same order as items, regardless of completion order (spec.md §4.7
// "query and subscription root fields execute in parallel" / §4.7 "nested
// selections execute in parallel"). A per-item failure is represented in R
// itself (e.g. a result carrying an error) rather than through
// errgroup's own error channel, since one field failing must never cancel
// its siblings (spec.md §7 "errors accumulate without short-circuiting") —
// errgroup here is used purely for bounded goroutine fan-out and a single
// Wait(), grounded on the teacher's use of errgroup.Group in its own
// concurrent plan-execution paths.
func zipParallel[T any, R any](ctx context.Context, limit int, items []T, work func(ctx context.Context, i int, item T) R) []R {
	results := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = work(gctx, i, item)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// zipOrdered runs work sequentially, one item at a time, in source order
// (spec.md §4.7 "mutation root fields execute sequentially in source
// order").
func zipOrdered[T any, R any](ctx context.Context, items []T, work func(ctx context.Context, i int, item T) R) []R {
	results := make([]R, len(items))
	for i, item := range items {
		results[i] = work(ctx, i, item)
	}
	return results
}
