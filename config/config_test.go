package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadcost/config"
	"github.com/katalvlaran/roadcost/costmatrix"
	"github.com/katalvlaran/roadcost/route"
)

func TestDefault_IsValidRoadTrip(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.Nodes)
	assert.Equal(t, route.RoadTrip, cfg.ScoredRoute())
	assert.Equal(t, int64(73), cfg.Route.FuelBudget)
	assert.Equal(t, "zero", cfg.Completion.Unreachable)
	assert.Len(t, cfg.MatrixOptions(), 2, "workers left to the default")
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "roadtrip.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "floyd-warshall", cfg.Completion.Engine)
	assert.Equal(t, 4, cfg.Completion.Workers)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Len(t, cfg.MatrixOptions(), 3)

	var o costmatrix.Options
	for _, opt := range cfg.MatrixOptions() {
		opt(&o)
	}
	assert.Equal(t, costmatrix.UnreachableInfinite, o.Policy)
	assert.Equal(t, 4, o.Workers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_PartialOverride(t *testing.T) {
	cfg, err := config.Parse([]byte("nodes: 4\nroute:\n  end: 4\n  direct_when_empty: true\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Nodes)
	assert.Equal(t, route.Route{Start: 1, End: 4, DirectWhenEmpty: true}, cfg.ScoredRoute())
	assert.Equal(t, "dijkstra", cfg.Completion.Engine, "untouched sections keep defaults")
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("completion:\n  engin: gonum\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engin")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want string
	}{
		"nodes":       {"nodes: 0\n", "nodes must be positive"},
		"end":         {"nodes: 10\n", "route.end 100 outside [1, 10]"},
		"start":       {"route:\n  start: 0\n", "route.start 0"},
		"budget":      {"route:\n  fuel_budget: -1\n", "fuel_budget"},
		"engine":      {"completion:\n  engine: astar\n", "completion.engine"},
		"workers":     {"completion:\n  workers: -2\n", "completion.workers"},
		"unreachable": {"completion:\n  unreachable: maybe\n", "completion.unreachable"},
		"level":       {"logging:\n  level: loud\n", "logging.level"},
		"format":      {"logging:\n  format: xml\n", "logging.format"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalid)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	_, err := config.Parse([]byte("nodes: -1\nlogging:\n  format: xml\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "nodes")
	assert.Contains(t, err.Error(), "logging.format")
}
