package matrix_test

import (
	"testing"

	"github.com/katalvlaran/roadcost/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloydWarshall_Nil(t *testing.T) {
	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
}

// Square A–B(1), B–C(2), C–D(1), A–D(10): the long direct edge A–D must
// shrink to 4 through B and C.
func TestFloydWarshall_ShortensDirectEdge(t *testing.T) {
	m := mustDense(t, 4)
	require.NoError(t, m.SetEdge(0, 1, 1))
	require.NoError(t, m.SetEdge(1, 2, 2))
	require.NoError(t, m.SetEdge(2, 3, 1))
	require.NoError(t, m.SetEdge(0, 3, 10))

	require.NoError(t, matrix.FloydWarshall(m))

	exp := [][]int64{
		{0, 1, 3, 4},
		{1, 0, 2, 3},
		{3, 2, 0, 1},
		{4, 3, 1, 0},
	}
	for i := range exp {
		for j := range exp[i] {
			c, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, matrix.Known(exp[i][j]), c, "dist[%d,%d]", i, j)
		}
	}
	assert.True(t, m.Symmetric())
}

func TestFloydWarshall_DisconnectedStaysUnreachable(t *testing.T) {
	m := mustDense(t, 3)
	require.NoError(t, m.SetEdge(0, 1, 2))

	require.NoError(t, matrix.FloydWarshall(m))

	c, _ := m.At(0, 2)
	assert.Equal(t, matrix.Unreachable(), c)
	c, _ = m.At(2, 2)
	assert.Equal(t, matrix.Known(0), c)
	assert.Equal(t, 4, m.CountUnreachable())
}
