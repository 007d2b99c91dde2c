package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadcost/costmatrix"
)

// Sentinel errors for sequence validation and scoring.
var (
	// ErrNilOracle indicates a nil cost oracle.
	ErrNilOracle = errors.New("route: oracle is nil")

	// ErrDuplicateVisit indicates a node visited more than once.
	ErrDuplicateVisit = errors.New("route: node visited more than once")

	// ErrEndpointInSequence indicates Start or End listed as an interior visit.
	ErrEndpointInSequence = errors.New("route: endpoint listed as a visit")

	// ErrNegativeBudget indicates a fuel budget below zero.
	ErrNegativeBudget = errors.New("route: fuel budget must be non-negative")
)

// Oracle answers shortest-path costs between 1-based nodes.
// *costmatrix.CostMatrix satisfies it.
type Oracle interface {
	Lookup(i, j int) (costmatrix.Cost, error)
}

// Route fixes the endpoints every visiting sequence is bracketed by.
type Route struct {
	Start int
	End   int
	// DirectWhenEmpty charges the Start→End hop for an empty sequence
	// instead of returning zero.
	DirectWhenEmpty bool
}

// RoadTrip is the road-trip planner's route: start at 1, finish at 100.
var RoadTrip = Route{Start: 1, End: 100}

// DefaultFuelBudget is the road-trip planner's fuel allowance.
const DefaultFuelBudget int64 = 73

// Score is a hard/medium/soft score. Higher is better at every level and
// levels compare lexicographically.
type Score struct {
	Hard   int64
	Medium int64
	Soft   int64
}

// Feasible reports whether no hard constraint is broken.
func (s Score) Feasible() bool { return s.Hard >= 0 }

// Compare returns -1, 0 or +1 as s is worse than, equal to or better than o.
func (s Score) Compare(o Score) int {
	for _, p := range [][2]int64{{s.Hard, o.Hard}, {s.Medium, o.Medium}, {s.Soft, o.Soft}} {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}

	return 0
}

// String formats the score as "0hard/3medium/-212soft".
func (s Score) String() string {
	return fmt.Sprintf("%dhard/%dmedium/%dsoft", s.Hard, s.Medium, s.Soft)
}
