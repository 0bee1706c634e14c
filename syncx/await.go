package syncx

import (
	"context"
	"golang.org/x/sync/errgroup"
)

// AwaitAll waits for every [FutureErr] to resolve and returns their values in the same order.
// The first error returned by any of them cancels the wait for the rest, and is returned.
func AwaitAll[T any](ctx context.Context, futures ...FutureErr[T]) ([]T, error) {
	results := make([]T, len(futures))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range futures {
		g.Go(func() error {
			val, err := f.AwaitCtx(ctx)
			if err != nil {
				return err
			}
			results[i] = val
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
