// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// minor returns the (n-1)×(n-1) submatrix of m obtained by deleting row 0 and column col.
// MAIN DESCRIPTION:
//   - Building block of first-row cofactor expansion.
//
// Implementation:
//   - Stage 1: reject n == 1 (ErrMinorOfScalar) and col outside [0,n) (ErrOutOfRange).
//   - Stage 2: cell (i,j) of the result takes m[i+1][j] for j<col and m[i+1][j+1]
//     otherwise, preserving the relative order of the remaining columns.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *SquareMat) minor(col int) (*SquareMat, error) {
	if m.n == 1 {
		return nil, matrixErrorf(ctxMinor, ErrMinorOfScalar)
	}
	if col < 0 || col >= m.n {
		return nil, matrixErrorf(ctxMinor, fmt.Errorf("column %d: %w", col, ErrOutOfRange))
	}
	sub := m.withSamePolicy(m.n - 1)
	k := sub.n
	var i, j, src int
	for i = 0; i < k; i++ {
		for j = 0; j < k; j++ {
			src = j
			if j >= col {
				src = j + 1
			}
			sub.data[i*k+j] = m.data[(i+1)*m.n+src]
		}
	}

	return sub, nil
}

// Det returns the determinant of m by recursive cofactor expansion along row 0.
// MAIN DESCRIPTION:
//   - det(M) = Σ_i (-1)^i · M[0][i] · det(minor(i)), with det of a 1×1 matrix being its cell.
//
// Behavior highlights:
//   - Signs alternate starting positive at column 0: +, -, +, -, ...
//   - A zero entry on row 0 contributes nothing, so its minor is never built.
//   - No pivoting and no elimination: cost grows factorially with n.
//   - Recursion depth is n.
//
// Complexity:
//   - Time O(n!), Space O(n²) per live recursion level.
func (m *SquareMat) Det() float64 {
	if m.n == 1 {
		return m.data[0]
	}
	acc := ZeroSum
	sign := 1.0
	for col := 0; col < m.n; col++ {
		if a := m.data[col]; a != 0 {
			sub, _ := m.minor(col) // n > 1 and col in range
			acc += sign * a * sub.Det()
		}
		sign = -sign
	}

	return acc
}
