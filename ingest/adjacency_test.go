package ingest_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/roadcost/ingest"
	"github.com/katalvlaran/roadcost/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(t *testing.T, m *matrix.Dense, i, j int) matrix.Cell {
	t.Helper()
	c, err := m.At(i, j)
	require.NoError(t, err)

	return c
}

func TestBuildAdjacency_BothMetricsOnePass(t *testing.T) {
	edges := []ingest.RawEdge{
		{A: 1, B: 2, Distance: 10, Fuel: 1},
		{A: 2, B: 3, Distance: 10, Fuel: 2},
	}

	adj, err := ingest.BuildAdjacency(edges, 4)
	require.NoError(t, err)

	assert.Equal(t, matrix.Known(10), cell(t, adj.Distance, 0, 1))
	assert.Equal(t, matrix.Known(10), cell(t, adj.Distance, 1, 0))
	assert.Equal(t, matrix.Known(2), cell(t, adj.Fuel, 2, 1))
	assert.Equal(t, matrix.Unreachable(), cell(t, adj.Distance, 0, 2), "no direct edge")
	assert.Equal(t, matrix.Unreachable(), cell(t, adj.Fuel, 3, 0), "isolated node")
	assert.Equal(t, matrix.Known(0), cell(t, adj.Fuel, 3, 3))

	assert.True(t, adj.Distance.Symmetric())
	assert.True(t, adj.Fuel.Symmetric())
	assert.Same(t, adj.Fuel, adj.Seed(ingest.MetricFuel))
	assert.Same(t, adj.Distance, adj.Seed(ingest.MetricDistance))
}

func TestBuildAdjacency_DuplicatesLastWriteWins(t *testing.T) {
	// Same shape as the road-trip data: "6 8 22 1" then "8 6 22 29".
	edges := []ingest.RawEdge{
		{A: 6, B: 8, Distance: 22, Fuel: 1},
		{A: 8, B: 6, Distance: 22, Fuel: 29},
	}

	adj, err := ingest.BuildAdjacency(edges, 8)
	require.NoError(t, err)
	assert.Equal(t, matrix.Known(29), cell(t, adj.Fuel, 5, 7))
	assert.Equal(t, matrix.Known(29), cell(t, adj.Fuel, 7, 5))
}

func TestBuildAdjacency_InvalidConfiguration(t *testing.T) {
	for _, n := range []int{0, -5} {
		_, err := ingest.BuildAdjacency(nil, n)
		assert.ErrorIs(t, err, ingest.ErrInvalidConfiguration)
	}
}

func TestBuildAdjacency_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		edge   ingest.RawEdge
		reason string
	}{
		{"node zero", ingest.RawEdge{A: 0, B: 2}, "node A 0 outside [1, 3]"},
		{"node too large", ingest.RawEdge{A: 1, B: 4}, "node B 4 outside [1, 3]"},
		{"negative distance", ingest.RawEdge{A: 1, B: 2, Distance: -1}, "negative distance -1"},
		{"negative fuel", ingest.RawEdge{A: 1, B: 2, Fuel: -7}, "negative fuel -7"},
		{"huge distance", ingest.RawEdge{A: 1, B: 2, Distance: 9223372036854775000}, "distance 9223372036854775000 exceeds 4503599627370496"},
		{"huge fuel", ingest.RawEdge{A: 1, B: 2, Fuel: 1 << 53}, "fuel 9007199254740992 exceeds 4503599627370496"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			edges := []ingest.RawEdge{{A: 1, B: 2, Distance: 1, Fuel: 1}, tc.edge}
			adj, err := ingest.BuildAdjacency(edges, 3)
			require.ErrorIs(t, err, ingest.ErrMalformedInput)
			assert.Nil(t, adj.Distance, "all-or-nothing")
			assert.Nil(t, adj.Fuel, "all-or-nothing")

			var mie *ingest.MalformedInputError
			require.True(t, errors.As(err, &mie))
			assert.Equal(t, 2, mie.Record)
			assert.Equal(t, tc.reason, mie.Reason)
		})
	}
}

func TestMaxWeight(t *testing.T) {
	assert.Equal(t, int64(1)<<53, ingest.MaxWeight(1))
	assert.Equal(t, int64(1)<<52, ingest.MaxWeight(3))
	assert.Equal(t, int64(1)<<53/99, ingest.MaxWeight(100))

	// The cap itself is accepted; a path over every node still fits.
	w := ingest.MaxWeight(3)
	adj, err := ingest.BuildAdjacency([]ingest.RawEdge{
		{A: 1, B: 2, Distance: w, Fuel: w},
		{A: 2, B: 3, Distance: w, Fuel: 1},
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, matrix.Known(w), cell(t, adj.Distance, 0, 1))
}

func TestBuildAdjacency_ReportsSourceLine(t *testing.T) {
	edges, err := ingest.ParseString("1 2 1 1\n\n1 9 1 1\n")
	require.NoError(t, err)

	_, err = ingest.BuildAdjacency(edges, 3)
	var mie *ingest.MalformedInputError
	require.ErrorAs(t, err, &mie)
	assert.Equal(t, 3, mie.Line)
	assert.Contains(t, err.Error(), "line 3")
}

func TestBuildAdjacency_SelfEdgeIgnored(t *testing.T) {
	adj, err := ingest.BuildAdjacency([]ingest.RawEdge{{A: 2, B: 2, Distance: 5, Fuel: 5}}, 2)
	require.NoError(t, err)
	assert.Equal(t, matrix.Known(0), cell(t, adj.Distance, 1, 1))
}

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "distance", ingest.MetricDistance.String())
	assert.Equal(t, "fuel", ingest.MetricFuel.String())
	assert.Equal(t, "Metric(7)", ingest.Metric(7).String())
	assert.Equal(t, int64(3), ingest.RawEdge{Distance: 9, Fuel: 3}.Weight(ingest.MetricFuel))
}
