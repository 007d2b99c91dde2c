package ingest

import (
	"fmt"

	"github.com/katalvlaran/roadcost/matrix"
)

// Adjacency holds the two seed matrices built from one pass over the edges.
// Both are 0-based, symmetric, Known(0) on the diagonal and Unreachable
// wherever no edge was given.
type Adjacency struct {
	Distance *matrix.Dense
	Fuel     *matrix.Dense
}

// Seed returns the seed matrix for metric m.
func (a Adjacency) Seed(m Metric) *matrix.Dense {
	if m == MetricFuel {
		return a.Fuel
	}

	return a.Distance
}

// BuildAdjacency seeds both metrics from edges over nodes [1, nodeCount].
//
// Every edge sets [a][b] and [b][a] in both matrices. Repeated records for
// the same pair are last-write-wins: no deduplication, averaging or
// agreement check. A self-edge (a == b) is accepted and ignored because the
// diagonal is pinned at zero.
//
// Errors: ErrInvalidConfiguration for nodeCount <= 0; *MalformedInputError for
// a node id outside [1, nodeCount], a negative weight or a weight above
// MaxWeight(nodeCount). On error no matrix is returned.
func BuildAdjacency(edges []RawEdge, nodeCount int) (Adjacency, error) {
	if nodeCount <= 0 {
		return Adjacency{}, fmt.Errorf("%w: node count %d must be positive", ErrInvalidConfiguration, nodeCount)
	}
	dist, err := matrix.NewDense(nodeCount)
	if err != nil {
		return Adjacency{}, fmt.Errorf("ingest: %w", err)
	}
	fuel := dist.Clone()

	for i, e := range edges {
		if reason := validateEdge(e, nodeCount); reason != "" {
			return Adjacency{}, &MalformedInputError{
				Record: i + 1,
				Line:   e.Line,
				Text:   fmt.Sprintf("%d %d %d %d", e.A, e.B, e.Distance, e.Fuel),
				Reason: reason,
			}
		}
		// Validated above, so SetEdge cannot fail.
		_ = dist.SetEdge(e.A-1, e.B-1, e.Distance)
		_ = fuel.SetEdge(e.A-1, e.B-1, e.Fuel)
	}

	return Adjacency{Distance: dist, Fuel: fuel}, nil
}

// maxPathCost bounds any shortest-path sum. It is below math.MaxInt64, so a
// real cost never aliases a saturated one, and it is exact in float64.
const maxPathCost int64 = 1 << 53

// MaxWeight is the largest edge weight accepted for a graph of nodeCount
// nodes. A shortest path has at most nodeCount-1 edges, so its cost stays
// within 2^53.
func MaxWeight(nodeCount int) int64 {
	if nodeCount <= 1 {
		return maxPathCost
	}

	return maxPathCost / int64(nodeCount-1)
}

// validateEdge returns a non-empty reason when e cannot be seeded.
func validateEdge(e RawEdge, nodeCount int) string {
	switch {
	case e.A < 1 || e.A > nodeCount:
		return fmt.Sprintf("node A %d outside [1, %d]", e.A, nodeCount)
	case e.B < 1 || e.B > nodeCount:
		return fmt.Sprintf("node B %d outside [1, %d]", e.B, nodeCount)
	case e.Distance < 0:
		return fmt.Sprintf("negative distance %d", e.Distance)
	case e.Fuel < 0:
		return fmt.Sprintf("negative fuel %d", e.Fuel)
	case e.Distance > MaxWeight(nodeCount):
		return fmt.Sprintf("distance %d exceeds %d", e.Distance, MaxWeight(nodeCount))
	case e.Fuel > MaxWeight(nodeCount):
		return fmt.Sprintf("fuel %d exceeds %d", e.Fuel, MaxWeight(nodeCount))
	default:
		return ""
	}
}
