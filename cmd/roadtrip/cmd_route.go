package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route N1 [N2 ...]",
		Short: "Print total distance, total fuel and score of a visiting sequence",
		Long: `Walk route.start → N1 → … → Nk → route.end over the cost matrix and
print the summed distance and fuel, plus the hard/medium/soft score under
route.fuel_budget.

Examples:
  roadtrip route --edges roads.txt 2 3 5
  roadtrip route --edges roads.txt --config roadtrip.yaml 17 42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := make([]int, len(args))
			for i, s := range args {
				v, err := strconv.Atoi(s)
				if err != nil {
					return fmt.Errorf("visit %d: %q is not a node id", i+1, s)
				}
				seq[i] = v
			}

			r := a.cfg.ScoredRoute()
			if err := r.Validate(seq, a.cfg.Nodes); err != nil {
				return err
			}
			cm, err := a.buildMatrix(cmd)
			if err != nil {
				return err
			}
			total, err := r.Totals(cm, seq)
			if err != nil {
				return err
			}
			score, err := r.Evaluate(cm, seq, a.cfg.Route.FuelBudget)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "route %d → %v → %d: distance=%d fuel=%d score=%s\n",
				r.Start, seq, r.End, total.Distance, total.Fuel, score)

			return nil
		},
	}
}
