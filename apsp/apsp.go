package apsp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roadcost/dijkstra"
	"github.com/katalvlaran/roadcost/matrix"
)

// Complete returns a new matrix whose cell (i, j) is the shortest-path cost
// from i to j over the direct edges of seed, or Unreachable when no path
// exists. seed is not modified.
//
// Errors: ErrNilSeed, ErrUnknownEngine, dijkstra.ErrNegativeWeight, or the
// context error if ctx is cancelled between source searches.
func Complete(ctx context.Context, seed *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if seed == nil {
		return nil, ErrNilSeed
	}
	if err := dijkstra.CheckSeed(seed); err != nil {
		return nil, fmt.Errorf("apsp: %w", err)
	}

	switch cfg.Engine {
	case EngineDijkstra:
		return completeDijkstra(ctx, seed, cfg.Workers)
	case EngineFloydWarshall:
		out := seed.Clone()
		if err := matrix.FloydWarshall(out); err != nil {
			return nil, fmt.Errorf("apsp: %w", err)
		}

		return out, nil
	case EngineGonum:
		return completeGonum(seed)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownEngine, cfg.Engine)
	}
}

// completeDijkstra runs one search per source. Every goroutine reads the
// shared seed and writes only output row s.
func completeDijkstra(ctx context.Context, seed *matrix.Dense, workers int) (*matrix.Dense, error) {
	n := seed.Size()
	out, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("apsp: %w", err)
	}
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for s := 0; s < n; s++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dist, _, err := dijkstra.Dijkstra(seed, dijkstra.Source(s), dijkstra.WithTrustedSeed())
			if err != nil {
				return fmt.Errorf("apsp: source %d: %w", s, err)
			}

			return out.SetRow(s, dist)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early on a cancelled parent context.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
