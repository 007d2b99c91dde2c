// Package costmatrix builds the immutable all-pairs (distance, fuel) cost
// oracle consumed by route optimizers.
//
// Pipeline:
//
//	ingest.BuildAdjacency → apsp.Complete(distance) ┐
//	                      → apsp.Complete(fuel)     ┴→ assemble → *CostMatrix
//
// The two completion passes run concurrently on an errgroup; assembly waits
// for both. Lookups are 1-based, O(1) and safe for concurrent readers.
//
// Unreachable pairs (a disconnected topology) are reported according to
// UnreachablePolicy. The default, UnreachableZero, keeps the road-trip
// planner's historical behaviour of scoring such pairs as free. That is most
// likely a latent bug: prefer UnreachableInfinite or UnreachableError when
// the input may be disconnected.
package costmatrix
