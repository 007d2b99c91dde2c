package costmatrix_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadcost/costmatrix"
	"github.com/katalvlaran/roadcost/ingest"
)

var sinkCost costmatrix.Cost

func BenchmarkBuild_RoadTrip(b *testing.B) {
	f, err := os.Open("../testdata/roadtrip_edges.txt")
	require.NoError(b, err)
	edges, err := ingest.Parse(f)
	f.Close()
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := costmatrix.Build(edges, 100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	cm := roadTrip(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkCost, _ = cm.Lookup(i%100+1, (i*7)%100+1)
	}
}
