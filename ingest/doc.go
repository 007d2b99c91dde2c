// Package ingest turns a sparse list of undirected two-metric measurements
// into seed adjacency matrices.
//
// Raw input is newline-separated records "nodeA nodeB distance fuel" with
// 1-based node ids. Parse reads text into []RawEdge; BuildAdjacency seeds
// both metrics in a single pass over 0-based indices. Both steps are
// all-or-nothing and report the offending record through *MalformedInputError.
package ingest
