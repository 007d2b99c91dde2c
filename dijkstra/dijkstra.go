// Package dijkstra implements single-source shortest paths over a seed cost matrix.
//
// Complexity:
//
//   - Time:  O(V² + E log V)
//   - Every settled node scans its dense seed row (V cells).
//   - Each relaxation may push one heap entry (up to E pushes), O(log V) each.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - The seed matrix is read-only here. Results go to a fresh slice, so
//     many searches may share one seed concurrently.
//   - We perform an upfront scan of the seed to detect negative costs and fail fast.
//   - We use a "lazy" decrease-key strategy: duplicates are pushed into the heap
//     and stale entries are skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadcost/matrix"
)

// Dijkstra computes shortest costs from Options.Source to every node of seed.
// An edge (u, v) exists iff seed[u][v] is Known.
//
// Returns:
//
//   - dist: dist[v] is Known(shortest cost) for reachable v, Unreachable otherwise.
//   - prev: if ReturnPath, prev[v] is the predecessor of v on one shortest path,
//     or -1 for the source and unreachable nodes. nil otherwise.
//   - err:  one of the sentinel errors.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. seed must be non-nil (ErrNilGraph).
//  3. Source must be in [0, n) (ErrVertexNotFound).
//  4. No seed cell may hold a negative cost (ErrNegativeWeight).
func Dijkstra(seed *matrix.Dense, opts ...Option) ([]matrix.Cell, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == noSource {
		return nil, nil, ErrEmptySource
	}
	if seed == nil {
		return nil, nil, ErrNilGraph
	}
	n := seed.Size()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: source=%d n=%d", ErrVertexNotFound, cfg.Source, n)
	}
	if !cfg.TrustedSeed {
		if err := CheckSeed(seed); err != nil {
			return nil, nil, err
		}
	}

	r := &runner{
		seed:    seed,
		options: cfg,
		dist:    make([]matrix.Cell, n), // zero Cell is Unreachable
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the node sequence source → … → target from a predecessor
// slice returned with WithReturnPath. It returns nil when target is out of
// range or was not reached. A path to the source itself is [source].
func PathTo(prev []int, source, target int) []int {
	if target < 0 || target >= len(prev) || source < 0 || source >= len(prev) {
		return nil
	}
	var rev []int
	for v := target; v != -1; v = prev[v] {
		rev = append(rev, v)
		if len(rev) > len(prev) { // corrupted predecessor chain
			return nil
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

// CheckSeed scans the seed for negative costs and returns ErrNegativeWeight
// naming the first offending cell. O(V²).
func CheckSeed(seed *matrix.Dense) error {
	if seed == nil {
		return ErrNilGraph
	}
	n := seed.Size()
	for u := 0; u < n; u++ {
		row, _ := seed.Row(u) // u in range
		for v, c := range row {
			if w, ok := c.Cost(); ok && w < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	seed    *matrix.Dense // read-only topology oracle
	options Options
	dist    []matrix.Cell // best-known cost per node
	prev    []int         // predecessor per node, nil unless ReturnPath
	visited []bool        // finalized flags
	pq      nodePQ        // lazy min-heap
}

// init seeds the source at distance zero.
func (r *runner) init() {
	if r.prev != nil {
		for v := range r.prev {
			r.prev[v] = -1
		}
	}
	r.dist[r.options.Source] = matrix.Known(0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly settles the closest unsettled node and relaxes its edges.
// It stops when the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry: a shorter distance to u was already finalized.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every direct edge u→v in the seed row of u.
// Assumes d is the finalized distance of u.
func (r *runner) relax(u int, d int64) error {
	row, err := r.seed.Row(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to read row of %d: %w", u, err)
	}

	from := matrix.Known(d)
	for v, c := range row {
		if v == u || r.visited[v] {
			continue
		}
		w, ok := c.Cost()
		if !ok || w >= r.options.InfEdgeThreshold {
			continue
		}

		cand := from.Plus(w)
		nd, _ := cand.Cost()
		if nd > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal costs keep the first predecessor.
		if !cand.Less(r.dist[v]) {
			continue
		}
		r.dist[v] = cand
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a node and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id so
// the settle order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
