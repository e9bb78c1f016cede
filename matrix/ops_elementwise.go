// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise kernels (ew*) shared by the public
//     comparison surface (AllClose, ApproxEqual) and the ingestion checks.
//   - Keep all loops deterministic with a *SquareMat fast-path over the flat buffer.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels); api.go and compare.go wrap them.
//   - The generic path goes through the Matrix interface (At), so any
//     implementation, including test wrappers that hide the concrete type, works.

package matrix

import "math"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrNilMatrix / ErrSizeMismatch).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//   - NaN is never close to anything; equal infinities are close.
//
// Time: O(r*c). Space: O(1). Deterministic; exits on the first violation.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if isNilMatrix(a) || isNilMatrix(b) {
		return false, matrixErrorf("AllClose", ErrNilMatrix)
	}
	r, c := a.Rows(), a.Cols()
	if r != b.Rows() || c != b.Cols() {
		return false, matrixErrorf("AllClose", ErrSizeMismatch)
	}

	// Fast path: both *SquareMat → flat slices.
	if sa, okA := a.(*SquareMat); okA {
		if sb, okB := b.(*SquareMat); okB {
			for idx := range sa.data {
				if !closeEnough(sa.data[idx], sb.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar predicate behind ewAllClose.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b { // covers equal infinities
		return true
	}
	diff := math.Abs(a - b) // NaN propagates and fails the comparison below

	return diff <= atol+rtol*math.Abs(b)
}

// ewFirstNonFinite returns the flat index of the first NaN/±Inf in data, or -1.
func ewFirstNonFinite(data []float64) int {
	for idx, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return idx
		}
	}

	return -1
}

// isNilMatrix reports whether m is nil, including a typed nil *SquareMat.
func isNilMatrix(m Matrix) bool {
	if m == nil {
		return true
	}
	if sm, ok := m.(*SquareMat); ok && sm == nil {
		return true
	}

	return false
}
