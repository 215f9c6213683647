package listview

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Batch runs the fetches concurrently and waits for all of them. The first
// failure cancels the others and fails the batch, so callers apply their
// results only when Batch returns nil.
func Batch(ctx context.Context, fetches ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		g.Go(func() error {
			return fetch(gctx)
		})
	}
	return g.Wait()
}
