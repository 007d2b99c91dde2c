package costmatrix

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roadcost/apsp"
	"github.com/katalvlaran/roadcost/dijkstra"
	"github.com/katalvlaran/roadcost/ingest"
	"github.com/katalvlaran/roadcost/matrix"
)

// CostMatrix is the immutable all-pairs (distance, fuel) lookup over nodes
// [1, NodeCount()]. It has no writers after Build returns, so any number of
// goroutines may call its methods without synchronization.
type CostMatrix struct {
	n         int
	cells     []Cost // row-major, 0-based, policy already applied
	reachable []bool // row-major, 0-based
	policy    UnreachablePolicy
	seeds     ingest.Adjacency // kept for Path
	stats     Stats
}

// Build ingests edges over nodes [1, nodeCount], completes both metrics and
// assembles the lookup. Construction is all-or-nothing.
//
// Errors: ErrInvalidConfiguration, *ingest.MalformedInputError
// (errors.Is ErrMalformedInput), ErrUnknownPolicy, apsp.ErrUnknownEngine.
func Build(edges []ingest.RawEdge, nodeCount int, opts ...Option) (*CostMatrix, error) {
	return BuildContext(context.Background(), edges, nodeCount, opts...)
}

// BuildFromReader parses raw text records (see ingest.Parse) and calls Build.
func BuildFromReader(r io.Reader, nodeCount int, opts ...Option) (*CostMatrix, error) {
	return BuildContextFromReader(context.Background(), r, nodeCount, opts...)
}

// BuildContextFromReader is BuildFromReader with a cancellation context.
func BuildContextFromReader(ctx context.Context, r io.Reader, nodeCount int, opts ...Option) (*CostMatrix, error) {
	edges, err := ingest.Parse(r)
	if err != nil {
		return nil, err
	}

	return BuildContext(ctx, edges, nodeCount, opts...)
}

// BuildContext is Build with a context that can abort the completion passes.
func BuildContext(ctx context.Context, edges []ingest.RawEdge, nodeCount int, opts ...Option) (*CostMatrix, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}

	cm, err := build(ctx, edges, nodeCount, cfg)
	if cfg.Metrics != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		cfg.Metrics.Builds.WithLabelValues(result).Inc()
	}
	if err != nil {
		cfg.Logger.Error("cost matrix build failed", "nodes", nodeCount, "error", err)
		return nil, err
	}

	return cm, nil
}

func build(ctx context.Context, edges []ingest.RawEdge, nodeCount int, cfg Options) (*CostMatrix, error) {
	if _, ok := policyNames[cfg.Policy]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, cfg.Policy)
	}
	log := cfg.Logger.With(slog.Int("nodes", nodeCount))

	adj, err := ingest.BuildAdjacency(edges, nodeCount)
	if err != nil {
		return nil, err
	}
	log.Debug("seeded adjacency", slog.Int("records", len(edges)))

	apspOpts := []apsp.Option{apsp.WithEngine(cfg.Engine)}
	if cfg.Workers > 0 {
		apspOpts = append(apspOpts, apsp.WithWorkers(cfg.Workers))
	}

	// The metric passes share no mutable state: each reads its own seed and
	// fills its own slot.
	completed := make([]*matrix.Dense, len(ingest.Metrics))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range ingest.Metrics {
		g.Go(func() error {
			log.Info("completing graph", slog.String("metric", m.String()), slog.String("engine", cfg.Engine.String()))
			start := time.Now()
			out, err := apsp.Complete(gctx, adj.Seed(m), apspOpts...)
			if err != nil {
				return fmt.Errorf("costmatrix: complete %v: %w", m, err)
			}
			elapsed := time.Since(start)
			unreachable := out.CountUnreachable()
			log.Debug("completed graph",
				slog.String("metric", m.String()),
				slog.Duration("elapsed", elapsed),
				slog.Int("unreachable_pairs", unreachable),
			)
			if cfg.Metrics != nil {
				cfg.Metrics.CompletionTime.WithLabelValues(m.String(), cfg.Engine.String()).Observe(elapsed.Seconds())
				cfg.Metrics.UnreachablePairs.WithLabelValues(m.String()).Set(float64(unreachable))
			}
			completed[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("combining graphs to cost matrix", slog.String("unreachable_policy", cfg.Policy.String()))
	cm := assemble(completed[ingest.MetricDistance], completed[ingest.MetricFuel], cfg.Policy)
	cm.seeds = adj
	cm.stats.Records = len(edges)
	cm.stats.Edges = adj.Distance.CountKnownOffDiagonal() / 2
	if cm.stats.UnreachablePairs > 0 {
		log.Warn("graph is not connected",
			slog.Int("unreachable_pairs", cm.stats.UnreachablePairs),
			slog.String("unreachable_policy", cfg.Policy.String()),
		)
	}

	return cm, nil
}

// assemble merges the completed metric matrices into the flat lookup,
// mapping Unreachable cells according to policy.
func assemble(dist, fuel *matrix.Dense, policy UnreachablePolicy) *CostMatrix {
	n := dist.Size()
	cm := &CostMatrix{
		n:         n,
		cells:     make([]Cost, n*n),
		reachable: make([]bool, n*n),
		policy:    policy,
	}
	cm.stats.NodeCount = n

	var fallback int64 // UnreachableZero and UnreachableError store 0
	if policy == UnreachableInfinite {
		fallback = Infinite
	}
	for i := 0; i < n; i++ {
		drow, _ := dist.Row(i)
		frow, _ := fuel.Row(i)
		for j := 0; j < n; j++ {
			d, dok := drow[j].Cost()
			f, fok := frow[j].Cost()
			if !dok {
				d = fallback
			}
			if !fok {
				f = fallback
			}
			idx := i*n + j
			cm.cells[idx] = Cost{Distance: d, Fuel: f}
			cm.reachable[idx] = dok && fok
			if !cm.reachable[idx] {
				cm.stats.UnreachablePairs++
			}
		}
	}

	return cm
}

// index validates 1-based ids and returns the flat 0-based offset.
func (cm *CostMatrix) index(i, j int) (int, error) {
	if i < 1 || i > cm.n || j < 1 || j > cm.n {
		return 0, fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrOutOfRange, i, j, cm.n)
	}

	return (i-1)*cm.n + (j - 1), nil
}

// Lookup returns the shortest (distance, fuel) from node i to node j.
// Requires 1 <= i, j <= NodeCount(), otherwise ErrOutOfRange. Unreachable
// pairs follow the build policy. O(1), no allocation on success.
func (cm *CostMatrix) Lookup(i, j int) (Cost, error) {
	idx, err := cm.index(i, j)
	if err != nil {
		return Cost{}, err
	}
	if cm.policy == UnreachableError && !cm.reachable[idx] {
		return Cost{}, fmt.Errorf("%w: %d and %d", ErrUnreachable, i, j)
	}

	return cm.cells[idx], nil
}

// Reachable reports whether a path connects nodes i and j.
func (cm *CostMatrix) Reachable(i, j int) (bool, error) {
	idx, err := cm.index(i, j)
	if err != nil {
		return false, err
	}

	return cm.reachable[idx], nil
}

// Path returns one shortest node sequence i → … → j under metric m, with
// 1-based ids and both endpoints included. It re-runs a single-source
// search on the seed, so it is O(N²) rather than O(1); intended for
// reporting, not scoring.
func (cm *CostMatrix) Path(m ingest.Metric, i, j int) ([]int, error) {
	if _, err := cm.index(i, j); err != nil {
		return nil, err
	}
	_, prev, err := dijkstra.Dijkstra(cm.seeds.Seed(m), dijkstra.Source(i-1), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("costmatrix: path %d→%d: %w", i, j, err)
	}
	p := dijkstra.PathTo(prev, i-1, j-1)
	if p == nil {
		return nil, fmt.Errorf("%w: %d and %d", ErrUnreachable, i, j)
	}
	for k := range p {
		p[k]++
	}

	return p, nil
}

// NodeCount returns N.
func (cm *CostMatrix) NodeCount() int { return cm.n }

// Policy returns the unreachable policy the matrix was built with.
func (cm *CostMatrix) Policy() UnreachablePolicy { return cm.policy }

// Stats returns construction statistics.
func (cm *CostMatrix) Stats() Stats { return cm.stats }

// Equal reports whether two matrices answer every lookup identically.
func (cm *CostMatrix) Equal(o *CostMatrix) bool {
	if cm == nil || o == nil {
		return cm == o
	}
	if cm.n != o.n || cm.policy != o.policy {
		return false
	}
	for k := range cm.cells {
		if cm.cells[k] != o.cells[k] || cm.reachable[k] != o.reachable[k] {
			return false
		}
	}

	return true
}
