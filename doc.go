// Package roadcost turns a sparse, two-metric road network into a dense
// all-pairs cost oracle for route optimizers.
//
// What is roadcost?
//
//	A small, concurrent pipeline that:
//		• Ingests "nodeA nodeB distance fuel" edge records
//		• Completes each metric independently into shortest-path costs
//		• Serves O(1), read-only (distance, fuel) lookups
//		• Scores visiting sequences between two fixed endpoints
//
// Under the hood, everything is organized under these subpackages:
//
//	ingest/     — record parsing, validation and per-metric seed matrices
//	matrix/     — dense square matrices of tagged cells, Floyd–Warshall
//	dijkstra/   — single-source shortest paths over a seed matrix
//	apsp/       — all-pairs completion (parallel Dijkstra, Floyd–Warshall, gonum)
//	costmatrix/ — the merged, immutable CostMatrix and its build metrics
//	route/      — route totals and hard/medium/soft scoring
//	config/     — YAML configuration
//	logging/    — slog construction from configuration
//	cmd/roadtrip — command-line front end
//
// Quick start:
//
//	cm, err := costmatrix.BuildFromReader(f, 100)
//	if err != nil {
//		return err
//	}
//	c, _ := cm.Lookup(1, 100)
//	total, _ := route.RoadTrip.Totals(cm, []int{2, 3, 5})
//
// Node ids are 1-based at every public boundary and 0-based inside
// matrix, dijkstra and apsp.
package roadcost
