package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadcost/costmatrix"
	"github.com/katalvlaran/roadcost/route"
)

const edgesFile = "../../testdata/roadtrip_edges.txt"

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestMatrix_Stats(t *testing.T) {
	out, _, err := run(t, "matrix", "--edges", edgesFile)
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=100 records=955")
	assert.Contains(t, out, "unreachable_pairs=0 policy=zero")
}

func TestMatrix_LookupAndPath(t *testing.T) {
	out, _, err := run(t, "matrix", "--edges", edgesFile, "--from", "1", "--to", "100", "--path")
	require.NoError(t, err)
	assert.Contains(t, out, "1 → 100: distance=52 fuel=5\n")
	assert.Contains(t, out, "distance path: [1 ")
	assert.Contains(t, out, "fuel path: [1 ")
}

func TestMatrix_OutOfRange(t *testing.T) {
	_, _, err := run(t, "matrix", "--edges", edgesFile, "--from", "1", "--to", "101")
	assert.ErrorIs(t, err, costmatrix.ErrOutOfRange)
}

func TestMatrix_MissingEdgesFlag(t *testing.T) {
	_, _, err := run(t, "matrix")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edges")
}

func TestRoute_Totals(t *testing.T) {
	out, _, err := run(t, "route", "--edges", edgesFile, "2", "3", "5")
	require.NoError(t, err)
	assert.Equal(t, "route 1 → [2 3 5] → 100: distance=212 fuel=14 score=0hard/3medium/-212soft\n", out)
}

func TestRoute_RejectsBadSequences(t *testing.T) {
	_, _, err := run(t, "route", "--edges", edgesFile, "2", "2")
	assert.ErrorIs(t, err, route.ErrDuplicateVisit)

	_, _, err = run(t, "route", "--edges", edgesFile, "1")
	assert.ErrorIs(t, err, route.ErrEndpointInSequence)

	_, _, err = run(t, "route", "--edges", edgesFile, "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two" is not a node id`)
}

func TestRoute_ConfigAndLogging(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "roadtrip.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
route:
  fuel_budget: 10
completion:
  engine: gonum
logging:
  level: debug
  format: json
`), 0o600))

	out, stderr, err := run(t, "route", "--edges", edgesFile, "--config", cfgPath, "2", "3", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "score=-4hard/3medium/-212soft")
	assert.Contains(t, stderr, `"msg":"completing graph"`)
	assert.Contains(t, stderr, `"engine":"gonum"`)
}

func TestMetricsFlag(t *testing.T) {
	out, _, err := run(t, "matrix", "--edges", edgesFile, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, `roadcost_matrix_builds_total{result="ok"} 1`)
	assert.Contains(t, out, "roadcost_completion_duration_seconds_bucket")
	assert.Contains(t, out, `roadcost_unreachable_pairs{metric="fuel"} 0`)
}
