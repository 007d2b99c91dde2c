// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
)

// Cell is a single cost-matrix entry: either Known(cost) with cost ≥ 0,
// or Unreachable (no direct edge / no path).
//
// The zero value is Unreachable, so a freshly made []Cell reads as
// "nothing known yet".
type Cell struct {
	cost  int64 // valid only when known == true
	known bool  // tag
}

// Known returns a cell holding the given non-negative cost.
// Negative costs are a programmer error at this level; validating
// constructors (Dense.SetEdge, ingestion) reject them with ErrNegativeWeight.
func Known(cost int64) Cell {
	return Cell{cost: cost, known: true}
}

// Unreachable returns the empty cell.
func Unreachable() Cell {
	return Cell{}
}

// IsKnown reports whether the cell carries a cost.
func (c Cell) IsKnown() bool { return c.known }

// Cost returns the stored cost and whether the cell is known.
// For an Unreachable cell the cost is 0 and ok is false.
func (c Cell) Cost() (cost int64, ok bool) {
	return c.cost, c.known
}

// Plus returns c + w when c is known, saturating at math.MaxInt64.
// An Unreachable cell stays Unreachable: there is no arithmetic on a
// missing value.
func (c Cell) Plus(w int64) Cell {
	if !c.known {
		return c
	}
	if w > 0 && c.cost > math.MaxInt64-w {
		return Known(math.MaxInt64)
	}

	return Known(c.cost + w)
}

// Join returns c + d when both are known, Unreachable otherwise.
func (c Cell) Join(d Cell) Cell {
	if !c.known || !d.known {
		return Unreachable()
	}

	return c.Plus(d.cost)
}

// Less orders cells by cost with Unreachable greater than every known cost.
// Two Unreachable cells are not Less than each other.
func (c Cell) Less(d Cell) bool {
	switch {
	case !c.known:
		return false
	case !d.known:
		return true
	default:
		return c.cost < d.cost
	}
}

// String renders a known cell as its decimal cost and Unreachable as "∞".
func (c Cell) String() string {
	if !c.known {
		return "∞"
	}

	return strconv.FormatInt(c.cost, 10)
}
