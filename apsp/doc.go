// Package apsp completes a sparse seed cost matrix into dense all-pairs
// shortest-path costs.
//
// The seed (see package matrix) holds Known(cost) where a direct edge was
// observed and Unreachable elsewhere. Complete never writes the seed: results
// are accumulated in a separate output matrix, so the topology oracle and the
// result store stay distinct and per-source searches can run in parallel
// without locks (each search owns exactly one output row).
//
// Engines:
//
//   - EngineDijkstra (default): a Dijkstra search from every source node,
//     fanned out on a bounded errgroup.
//   - EngineFloydWarshall: dense in-place closure on a copy of the seed.
//   - EngineGonum: gonum's DijkstraAllPaths over a weighted undirected graph.
//
// All engines produce identical matrices for non-negative seeds: a direct
// edge is kept when no cheaper multi-hop path exists, replaced otherwise, and
// pairs with no path stay Unreachable. Mapping Unreachable to a public value
// is the caller's policy (package costmatrix).
package apsp
