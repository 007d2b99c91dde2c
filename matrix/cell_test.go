package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/roadcost/matrix"
	"github.com/stretchr/testify/assert"
)

func TestCell_ZeroValueIsUnreachable(t *testing.T) {
	var c matrix.Cell
	assert.False(t, c.IsKnown())
	assert.Equal(t, matrix.Unreachable(), c)

	cost, ok := c.Cost()
	assert.False(t, ok)
	assert.Equal(t, int64(0), cost)
}

func TestCell_PlusAndJoin(t *testing.T) {
	assert.Equal(t, matrix.Known(7), matrix.Known(3).Plus(4))
	assert.Equal(t, matrix.Unreachable(), matrix.Unreachable().Plus(4), "no arithmetic on a missing value")

	assert.Equal(t, matrix.Known(9), matrix.Known(4).Join(matrix.Known(5)))
	assert.Equal(t, matrix.Unreachable(), matrix.Known(4).Join(matrix.Unreachable()))
	assert.Equal(t, matrix.Unreachable(), matrix.Unreachable().Join(matrix.Known(4)))
}

func TestCell_PlusSaturates(t *testing.T) {
	got := matrix.Known(math.MaxInt64 - 1).Plus(10)
	cost, ok := got.Cost()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), cost)
}

func TestCell_Less(t *testing.T) {
	tests := []struct {
		name string
		a, b matrix.Cell
		want bool
	}{
		{"known<known", matrix.Known(1), matrix.Known(2), true},
		{"equal", matrix.Known(2), matrix.Known(2), false},
		{"known<unreachable", matrix.Known(1 << 60), matrix.Unreachable(), true},
		{"unreachable<known", matrix.Unreachable(), matrix.Known(0), false},
		{"unreachable<unreachable", matrix.Unreachable(), matrix.Unreachable(), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Less(tc.b))
		})
	}
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "42", matrix.Known(42).String())
	assert.Equal(t, "∞", matrix.Unreachable().String())
}
