// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) closure with deterministic loop order.
//   - Used as an alternative completion engine and as a test oracle for the
//     per-source Dijkstra completion.
//
// Contract:
//   - Unreachable means "no path"; the diagonal must be Known(0) before calling
//     (NewDense guarantees this).

package matrix

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Loop order is fixed (k → i → j). Only strict improvements are written,
// so a direct edge is never lengthened. Unreachable cells never take part in
// arithmetic: Join yields Unreachable if either leg is missing.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	var (
		n            = m.n
		data         = m.data
		k, i, j      int
		baseK, baseI int
		ik, cand     Cell
	)

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if !ik.known { // i cannot reach k, no path via k can improve i→j
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				cand = ik.Join(data[baseK+j])
				if cand.Less(data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
