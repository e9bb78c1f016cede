// SPDX-License-Identifier: MIT

// Package matrix - ordering & equality.
//
// All six comparisons reduce each operand to the sum of its cells and compare
// the two scalars exactly. Two matrices with different layouts but the same
// total are therefore Equal, and matrices of different sizes are comparable.
// This is the ordering contract of SquareMat, not a deep comparison: use
// ApproxEqual or AllClose for cell-by-cell checks.
package matrix

// Sum returns the sum of all cells in row-major order. A nil matrix sums to 0.
// Complexity: O(n²).
func (m *SquareMat) Sum() float64 {
	if m == nil {
		return ZeroSum
	}
	s := ZeroSum
	for _, v := range m.data {
		s += v
	}

	return s
}

// Compare returns -1, 0 or +1 as m.Sum() is less than, equal to, or greater than b.Sum().
// If either sum is NaN the result is 0.
func (m *SquareMat) Compare(b *SquareMat) int {
	sa, sb := m.Sum(), b.Sum()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return +1
	default:
		return 0
	}
}

// Equal reports m.Sum() == b.Sum().
func (m *SquareMat) Equal(b *SquareMat) bool { return m.Sum() == b.Sum() }

// NotEqual reports m.Sum() != b.Sum().
func (m *SquareMat) NotEqual(b *SquareMat) bool { return m.Sum() != b.Sum() }

// Less reports m.Sum() < b.Sum().
func (m *SquareMat) Less(b *SquareMat) bool { return m.Sum() < b.Sum() }

// LessEqual reports m.Sum() <= b.Sum().
func (m *SquareMat) LessEqual(b *SquareMat) bool { return m.Sum() <= b.Sum() }

// Greater reports m.Sum() > b.Sum().
func (m *SquareMat) Greater(b *SquareMat) bool { return m.Sum() > b.Sum() }

// GreaterEqual reports m.Sum() >= b.Sum().
func (m *SquareMat) GreaterEqual(b *SquareMat) bool { return m.Sum() >= b.Sum() }

// ApproxEqual reports whether m and b have the same size and every pair of
// cells differs by at most m.Epsilon(). Unlike Equal it looks at cells, not sums.
func (m *SquareMat) ApproxEqual(b *SquareMat) bool {
	if m == nil || b == nil {
		return m == b
	}
	ok, err := ewAllClose(m, b, 0, m.eps)

	return err == nil && ok
}
