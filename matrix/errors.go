// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ErrX)); callers match them via errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that a requested matrix order is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible shapes, e.g. a row slice whose
	// length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeWeight indicates that a negative cost was offered to a cell.
	// Shortest-path completion relies on non-negative costs.
	ErrNegativeWeight = errors.New("matrix: negative cost")
)
