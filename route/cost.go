package route

import (
	"fmt"

	"github.com/katalvlaran/roadcost/costmatrix"
)

// TotalDistance sums the distance of every hop Start → seq… → End.
//
// Contract:
//   - seq holds 1-based node ids; ids are checked by the oracle, so an id
//     outside the matrix yields costmatrix.ErrOutOfRange.
//   - Empty seq returns 0, or the direct Start→End distance when
//     DirectWhenEmpty is set.
//   - Infinite hops saturate the sum at costmatrix.Infinite.
//
// Complexity: O(len(seq)) lookups.
func (r Route) TotalDistance(o Oracle, seq []int) (int64, error) {
	c, err := r.Totals(o, seq)

	return c.Distance, err
}

// TotalFuel is TotalDistance for the fuel metric.
func (r Route) TotalFuel(o Oracle, seq []int) (int64, error) {
	c, err := r.Totals(o, seq)

	return c.Fuel, err
}

// Totals sums both metrics in a single walk. On error the partial sums are
// discarded and a zero Cost is returned.
func (r Route) Totals(o Oracle, seq []int) (costmatrix.Cost, error) {
	if o == nil {
		return costmatrix.Cost{}, ErrNilOracle
	}
	if len(seq) == 0 {
		if !r.DirectWhenEmpty {
			return costmatrix.Cost{}, nil
		}
		c, err := o.Lookup(r.Start, r.End)
		if err != nil {
			return costmatrix.Cost{}, fmt.Errorf("route: hop %d→%d: %w", r.Start, r.End, err)
		}

		return c, nil
	}

	var (
		sum  costmatrix.Cost
		prev = r.Start
	)
	for _, v := range seq {
		c, err := o.Lookup(prev, v)
		if err != nil {
			return costmatrix.Cost{}, fmt.Errorf("route: hop %d→%d: %w", prev, v, err)
		}
		sum = add(sum, c)
		prev = v
	}
	c, err := o.Lookup(prev, r.End)
	if err != nil {
		return costmatrix.Cost{}, fmt.Errorf("route: hop %d→%d: %w", prev, r.End, err)
	}

	return add(sum, c), nil
}

// Evaluate scores seq under a fuel budget. See the package doc for the
// score levels.
func (r Route) Evaluate(o Oracle, seq []int, fuelBudget int64) (Score, error) {
	if fuelBudget < 0 {
		return Score{}, fmt.Errorf("%w: %d", ErrNegativeBudget, fuelBudget)
	}
	c, err := r.Totals(o, seq)
	if err != nil {
		return Score{}, err
	}

	var s Score
	if c.Fuel > fuelBudget {
		s.Hard = -(c.Fuel - fuelBudget)
	}
	s.Medium = int64(len(seq))
	s.Soft = -c.Distance

	return s, nil
}

// Validate checks that seq is a plausible visiting order over nodes
// [1, nodeCount]: every id in range, no repeats, and neither endpoint
// listed as a visit.
func (r Route) Validate(seq []int, nodeCount int) error {
	seen := make(map[int]struct{}, len(seq))
	for i, v := range seq {
		if v < 1 || v > nodeCount {
			return fmt.Errorf("%w: visit %d is node %d, want [1,%d]", costmatrix.ErrOutOfRange, i, v, nodeCount)
		}
		if v == r.Start || v == r.End {
			return fmt.Errorf("%w: visit %d is node %d", ErrEndpointInSequence, i, v)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: node %d", ErrDuplicateVisit, v)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// add sums costs component-wise, saturating at costmatrix.Infinite.
func add(a, b costmatrix.Cost) costmatrix.Cost {
	return costmatrix.Cost{
		Distance: satAdd(a.Distance, b.Distance),
		Fuel:     satAdd(a.Fuel, b.Fuel),
	}
}

// satAdd adds two non-negative costs without wrapping past Infinite.
func satAdd(a, b int64) int64 {
	if a > costmatrix.Infinite-b {
		return costmatrix.Infinite
	}

	return a + b
}
