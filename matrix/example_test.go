package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/roadcost/matrix"
)

// ExampleFloydWarshall completes a three-node path graph in place.
func ExampleFloydWarshall() {
	m, _ := matrix.NewDense(3)
	_ = m.SetEdge(0, 1, 4) // A–B
	_ = m.SetEdge(1, 2, 6) // B–C

	_ = matrix.FloydWarshall(m)
	fmt.Print(m)
	// Output:
	// [0, 4, 10]
	// [4, 0, 6]
	// [10, 6, 0]
}
