// Package dijkstra defines core types and configuration options
// for single-source shortest paths over a seed cost matrix.
//
// Options:
//
//	– Source:           index of the starting node (must be set and in range).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; nodes beyond this stay Unreachable.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source index was provided.
//	– ErrNilGraph        if the seed matrix is nil.
//	– ErrVertexNotFound  if the source index is outside [0, n).
//	– ErrNegativeWeight  if a negative edge cost is detected in the seed.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source node index was provided.
	ErrEmptySource = errors.New("dijkstra: source node is not set")

	// ErrNilGraph indicates that a nil seed matrix was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: seed matrix is nil")

	// ErrVertexNotFound indicates that the source index is outside the seed.
	ErrVertexNotFound = errors.New("dijkstra: source node not found in seed")

	// ErrNegativeWeight indicates that a negative edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// noSource marks Options.Source as unset.
const noSource = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – 0-based starting node (required).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – nodes whose distance would exceed this value are not settled.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with cost ≥ this threshold are skipped.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	Source           int   // 0-based source node
	ReturnPath       bool  // whether to return predecessors
	MaxDistance      int64 // maximum distance to explore
	InfEdgeThreshold int64 // cost threshold above which edges are non-traversable
	TrustedSeed      bool  // skip the negative-cost pre-scan
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the 0-based source node. Must be provided.
func Source(node int) Option {
	return func(o *Options) {
		o.Source = node
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// considered non-traversable.
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithTrustedSeed skips the O(V²) negative-cost pre-scan. Use it only when the
// caller has already validated the seed, e.g. once before running a search
// from every source.
func WithTrustedSeed() Option {
	return func(o *Options) {
		o.TrustedSeed = true
	}
}

// DefaultOptions returns Options with no source selected, no path output,
// and no distance or edge caps.
func DefaultOptions() Options {
	return Options{
		Source:           noSource,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
