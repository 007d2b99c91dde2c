package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadcost/ingest"
)

type matrixFlags struct {
	from, to int
	path     bool
}

func newMatrixCmd(a *app) *cobra.Command {
	var f matrixFlags

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build the cost matrix and print its statistics or one lookup",
		Long: `Build the cost matrix from --edges.

Without --from/--to the command prints construction statistics. With both it
prints the shortest (distance, fuel) between the two nodes, and with --path
the node sequence realising each metric.

Examples:
  roadtrip matrix --edges roads.txt
  roadtrip matrix --edges roads.txt --from 1 --to 100 --path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cm, err := a.buildMatrix(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("from") && !cmd.Flags().Changed("to") {
				st := cm.Stats()
				fmt.Fprintf(out, "nodes=%d records=%d edges=%d unreachable_pairs=%d policy=%s\n",
					st.NodeCount, st.Records, st.Edges, st.UnreachablePairs, cm.Policy())
				return nil
			}

			c, err := cm.Lookup(f.from, f.to)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d → %d: distance=%d fuel=%d\n", f.from, f.to, c.Distance, c.Fuel)
			if !f.path {
				return nil
			}
			for _, m := range ingest.Metrics {
				p, err := cm.Path(m, f.from, f.to)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s path: %v\n", m, p)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&f.from, "from", 1, "source node (1-based)")
	cmd.Flags().IntVar(&f.to, "to", 1, "target node (1-based)")
	cmd.Flags().BoolVar(&f.path, "path", false, "also print one shortest path per metric")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}
