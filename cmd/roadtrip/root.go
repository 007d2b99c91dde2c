package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadcost/config"
	"github.com/katalvlaran/roadcost/costmatrix"
	"github.com/katalvlaran/roadcost/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	edgesPath   string
	configPath  string
	showMetrics bool
}

// app carries what a subcommand needs after the root pre-run.
type app struct {
	flags    globalFlags
	cfg      config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *costmatrix.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "roadtrip",
		Short: "Road-trip cost matrix builder",
		Long: `Build the all-pairs (distance, fuel) cost matrix of a road network and
score visiting sequences against it.

Input is a text file of "nodeA nodeB distance fuel" records, one per line.
Blank lines and lines starting with # are ignored.

Examples:
  roadtrip matrix --edges roads.txt
  roadtrip matrix --edges roads.txt --from 1 --to 100 --path
  roadtrip route --edges roads.txt --config roadtrip.yaml 2 3 5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.flags.showMetrics {
				return nil
			}
			return a.writeMetrics(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.edgesPath, "edges", "", "edge list file (required)")
	pf.StringVar(&a.flags.configPath, "config", "", "YAML configuration file (defaults apply when empty)")
	pf.BoolVar(&a.flags.showMetrics, "metrics", false, "print build metrics in Prometheus text format on exit")
	_ = root.MarkPersistentFlagRequired("edges")

	root.AddCommand(newMatrixCmd(a), newRouteCmd(a))

	return root
}

// init loads configuration and wires logging and metrics.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Logging)
	a.registry = prometheus.NewRegistry()
	a.metrics = costmatrix.NewMetrics(a.registry)

	return nil
}

// buildMatrix reads the edge file and builds the cost matrix.
func (a *app) buildMatrix(cmd *cobra.Command) (*costmatrix.CostMatrix, error) {
	f, err := os.Open(a.flags.edgesPath)
	if err != nil {
		return nil, fmt.Errorf("open edges: %w", err)
	}
	defer f.Close()

	a.log.Info("building cost matrix",
		slog.String("edges", a.flags.edgesPath),
		slog.Int("nodes", a.cfg.Nodes),
		slog.String("engine", a.cfg.Completion.Engine),
	)
	opts := append(a.cfg.MatrixOptions(),
		costmatrix.WithLogger(a.log),
		costmatrix.WithMetrics(a.metrics),
	)

	return costmatrix.BuildContextFromReader(cmd.Context(), f, a.cfg.Nodes, opts...)
}

func (a *app) writeMetrics(cmd *cobra.Command) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
