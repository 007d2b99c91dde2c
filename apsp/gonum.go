package apsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/roadcost/matrix"
)

// completeGonum mirrors the seed into a gonum weighted undirected graph and
// reads every pair back from DijkstraAllPaths.
func completeGonum(seed *matrix.Dense) (*matrix.Dense, error) {
	n := seed.Size()
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i)) // isolated nodes still need an ID
	}
	for u := 0; u < n; u++ {
		row, _ := seed.Row(u)
		for v := u + 1; v < n; v++ {
			if w, ok := row[v].Cost(); ok {
				g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(u), simple.Node(v), float64(w)))
			}
		}
	}

	all := path.DijkstraAllPaths(g)

	out, err := matrix.NewDense(n)
	if err != nil {
		return nil, fmt.Errorf("apsp: %w", err)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue // NewDense pinned the diagonal
			}
			w := all.Weight(int64(u), int64(v))
			if math.IsInf(w, 1) {
				continue // stays Unreachable
			}
			if err := out.Set(u, v, matrix.Known(int64(w))); err != nil {
				return nil, fmt.Errorf("apsp: %w", err)
			}
		}
	}

	return out, nil
}
