// SPDX-License-Identifier: MIT

// Package matrix provides the dense, square cost matrices used while
// completing a sparse graph into all-pairs shortest-path costs.
//
// The package provides:
//
//   - Cell: a tagged matrix entry that is either Known(cost) or Unreachable.
//     There is no magic "infinity" integer, so arithmetic on a missing edge is
//     impossible by construction.
//   - Dense: an n×n row-major matrix of Cells with O(1) bounds-checked access,
//     symmetric writes and whole-row copies.
//   - FloydWarshall: an in-place dense closure, kept as an alternative engine
//     and as an independent oracle for the Dijkstra-based completion.
//
// Conventions:
//
//   - Indices are 0-based. Translation from 1-based node identifiers happens
//     at the public boundary (package costmatrix).
//   - A freshly allocated Dense has Known(0) on the diagonal and Unreachable
//     everywhere else, i.e. "no direct edge yet".
//   - Public accessors never panic on bad indices; they return ErrOutOfRange.
//
// Complexity:
//
//   - Memory: O(n²) cells.
//   - At/Set: O(1). Clone/Equal: O(n²). FloydWarshall: O(n³).
package matrix
