// Package dijkstra computes single-source shortest paths over a dense seed
// cost matrix (see package matrix) with non-negative integer costs.
//
// Overview:
//
//   - A seed matrix holds Known(cost) where a direct edge exists and
//     Unreachable where none does; the diagonal is Known(0).
//   - Dijkstra reads the seed and returns a fresh []matrix.Cell of shortest
//     costs. The seed is never written, so one seed can back many concurrent
//     searches (one per source in package apsp).
//   - A min-heap frontier with lazy decrease-key: stale entries are skipped
//     when popped.
//
// Key features:
//
//   - Functional options: Source (required), WithReturnPath, WithMaxDistance,
//     WithInfEdgeThreshold.
//   - PathTo rebuilds a node sequence from the predecessor slice.
//   - Deterministic: heap ties are broken by node index.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//   - ErrBadMaxDistance / ErrBadInfThreshold (via panic from the option
//     constructors on invalid arguments).
//
// API reference:
//
//	func Dijkstra(
//	    seed *matrix.Dense,
//	    opts ...Option,
//	) (dist []matrix.Cell, prev []int, err error)
//
// Thread safety:
//
//   - Safe for concurrent calls sharing one seed, provided nobody writes the seed.
package dijkstra
