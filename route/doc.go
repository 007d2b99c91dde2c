// Package route scores ordered visiting sequences against a cost oracle.
//
// A Route fixes two endpoint nodes. A visiting sequence [v1 … vk] is walked
// as Start → v1 → … → vk → End, summing one metric of every hop:
//
//	totalDistance([v1 … vk]) = d(Start,v1) + Σ d(vi,vi+1) + d(vk,End)
//
// The empty sequence scores zero, as the road-trip planner always did. Set
// Route.DirectWhenEmpty to charge the direct Start→End hop instead.
//
// Evaluate folds both totals into a three-level Score (hard/medium/soft)
// that a local-search optimizer can compare lexicographically:
//
//   - Hard:   −max(0, fuel − budget)  (over-budget fuel is infeasible)
//   - Medium: number of visits        (more stops is better)
//   - Soft:   −distance               (shorter is better)
//
// Every function here is read-only on its oracle and allocation-free, so
// many goroutines may score candidate sequences against one CostMatrix.
package route
