// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square, row-major matrix of Cells.
// n is the order, and data holds n*n cells in row-major order.
type Dense struct {
	n    int    // order (rows == cols)
	data []Cell // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense with Known(0) on the diagonal and
// Unreachable everywhere else.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice (zero Cell is Unreachable).
// Stage 3 (Finalize): pin the diagonal to zero.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrInvalidDimensions)
	}
	data := make([]Cell, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = Known(0)
	}

	return &Dense{n: n, data: data}, nil
}

// Size returns the order of the matrix.
// Complexity: O(1).
func (m *Dense) Size() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (Cell, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return Cell{}, err
	}

	return m.data[idx], nil
}

// Set assigns c at (row, col). No symmetry is implied.
// Complexity: O(1).
func (m *Dense) Set(row, col int, c Cell) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = c

	return nil
}

// SetEdge records an undirected direct edge: Known(w) at both (a,b) and (b,a).
// A later call for the same pair overwrites the earlier one (last write wins).
// Self-edges are ignored: the diagonal stays pinned at Known(0).
// Returns ErrOutOfRange or ErrNegativeWeight without touching the matrix.
// Complexity: O(1).
func (m *Dense) SetEdge(a, b int, w int64) error {
	ab, err := m.indexOf("SetEdge", a, b)
	if err != nil {
		return err
	}
	if w < 0 {
		return denseErrorf("SetEdge", a, b, ErrNegativeWeight)
	}
	if a == b {
		return nil
	}
	m.data[ab] = Known(w)
	m.data[b*m.n+a] = Known(w)

	return nil
}

// Row returns row i as a slice that SHARES storage with the matrix.
// Callers must treat it as read-only; use SetRow to write.
// Complexity: O(1).
func (m *Dense) Row(i int) ([]Cell, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n], nil
}

// SetRow copies cells into row i. len(cells) must equal Size().
// Distinct rows may be written concurrently: they never overlap.
// Complexity: O(n).
func (m *Dense) SetRow(i int, cells []Cell) error {
	if i < 0 || i >= m.n {
		return denseErrorf("SetRow", i, 0, ErrOutOfRange)
	}
	if len(cells) != m.n {
		return fmt.Errorf("Dense.SetRow(%d): len %d != %d: %w", i, len(cells), m.n, ErrDimensionMismatch)
	}
	copy(m.data[i*m.n:(i+1)*m.n], cells)

	return nil
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	data := make([]Cell, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// Equal reports whether m and o have the same order and identical cells.
// Complexity: O(n²).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Symmetric reports whether m[i][j] == m[j][i] for all i, j.
// Complexity: O(n²).
func (m *Dense) Symmetric() bool {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// CountUnreachable returns the number of off-diagonal Unreachable cells.
// Complexity: O(n²).
func (m *Dense) CountUnreachable() int {
	count := 0
	for _, c := range m.data {
		if !c.known {
			count++
		}
	}

	return count
}

// CountKnownOffDiagonal returns the number of off-diagonal Known cells.
// On a seed matrix this is twice the number of distinct undirected edges.
// Complexity: O(n²).
func (m *Dense) CountKnownOffDiagonal() int {
	count := 0
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if i != j && m.data[i*m.n+j].known {
				count++
			}
		}
	}

	return count
}

// String implements fmt.Stringer for debugging.
// Complexity: O(n²).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			sb.WriteString(m.data[i*m.n+j].String())
			if j < m.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
