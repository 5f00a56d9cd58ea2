package queries

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const defaultFanoutLimit = 8

// fanout runs fn for each item with at most limit calls in flight.
// Results keep the order of items regardless of completion order.
func fanout[T, R any](ctx context.Context, limit int, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(gctx, item)
			if err != nil {
				return err
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
