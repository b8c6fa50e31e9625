package applog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Probe starts workers goroutines that each fetch Instance and record the
// ID they observed. It waits for all of them and returns the IDs in worker
// order. A cancelled ctx stops workers that have not started yet.
func Probe(ctx context.Context, workers int) ([]string, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadWorkers, workers)
	}

	ids := make([]string, workers)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ids[i] = Instance().ID()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}

// SameInstance reports whether every ID equals the first one.
// An empty slice reports false.
func SameInstance(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids[1:] {
		if id != ids[0] {
			return false
		}
	}
	return true
}
