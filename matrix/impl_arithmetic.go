// SPDX-License-Identifier: MIT
// Package matrix provides the closed operator algebra of SquareMat:
// element-wise addition and subtraction, Hadamard product, scalar scale,
// division and modulo, matrix product, increment/decrement, negation,
// transpose and integer power.
//
// Purpose:
//   - Define every COMPOUND (mutating) operator once, as a validated in-place kernel.
//   - Derive every BINARY (non-mutating) operator uniformly: Copy the receiver,
//     apply the compound operator to the copy, return the copy.
//
// Contract:
//   - Compound operators validate (nil, size, scalar) before the first write, so a
//     failing call leaves the receiver untouched.
//   - Compound operators return the receiver to allow chaining:
//     m.AddAssign(b) then .ScaleAssign(2) etc.
//   - Binary operators never observably alter either operand.
//
// Notes:
//   - All loops are flat 0..n²-1 or fixed i→k→j; no data-dependent ordering.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opMod       = "Mod"
	opDiv       = "Div"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opNeg       = "Neg"
	opPow       = "Pow"
	opDet       = "Det"
)

// ZeroSum is the initial accumulator value for dot products and sums.
const ZeroSum = 0.0

// unit is the step applied by Inc/Dec.
const unit = 1.0

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- flat kernels (dst may alias a; never b unless stated) ----------

// addSubKernel computes dst[k] = a[k] + sign*b[k] over the flat buffers.
func addSubKernel(dst, a, b []float64, sign float64) {
	for k := range dst {
		dst[k] = a[k] + sign*b[k]
	}
}

// mulKernel writes the row-by-column product a×b into dst (all n×n, row-major).
// dst MUST NOT alias a or b: it is zeroed first and accumulated in i→k→j order.
// Zero entries of a are skipped.
func mulKernel(dst, a, b []float64, n int) {
	for k := range dst {
		dst[k] = ZeroSum
	}
	var i, k, j int
	var av float64
	var rowA, rowB int
	for i = 0; i < n; i++ {
		rowA = i * n
		for k = 0; k < n; k++ {
			av = a[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * n
			for j = 0; j < n; j++ {
				dst[rowA+j] += av * b[rowB+j]
			}
		}
	}
}

// ---------- compound (mutating) operators ----------

// AddAssign performs m += b cell-wise and returns m.
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch (both ErrInvalidArgument); m untouched on error.
//
// Complexity: O(n²).
func (m *SquareMat) AddAssign(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return m, matrixErrorf(opAdd, err)
	}
	addSubKernel(m.data, m.data, b.data, +1)

	return m, nil
}

// SubAssign performs m -= b cell-wise and returns m.
// Errors: ErrNilMatrix, ErrSizeMismatch; m untouched on error.
func (m *SquareMat) SubAssign(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return m, matrixErrorf(opSub, err)
	}
	addSubKernel(m.data, m.data, b.data, -1)

	return m, nil
}

// HadamardAssign performs the element-wise product m[i][j] *= b[i][j] and returns m.
// Errors: ErrNilMatrix, ErrSizeMismatch; m untouched on error.
func (m *SquareMat) HadamardAssign(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return m, matrixErrorf(opHadamard, err)
	}
	for k := range m.data {
		m.data[k] *= b.data[k]
	}

	return m, nil
}

// ModAssign replaces every cell with its floating-point remainder against k
// (math.Mod: the result carries the sign of the cell, e.g. -2.1 mod 3 == -2.1).
// Errors: ErrModuloByZero for k == 0; m untouched on error.
func (m *SquareMat) ModAssign(k int) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return m, matrixErrorf(opMod, err)
	}
	if err := ValidateModulus(k); err != nil {
		return m, matrixErrorf(opMod, err)
	}
	mod := float64(k)
	for idx := range m.data {
		m.data[idx] = math.Mod(m.data[idx], mod)
	}

	return m, nil
}

// ScaleAssign multiplies every cell by alpha and returns m. Cannot fail.
func (m *SquareMat) ScaleAssign(alpha float64) *SquareMat {
	for k := range m.data {
		m.data[k] *= alpha
	}

	return m
}

// DivAssign divides every cell by d and returns m.
// Errors: ErrDivideByZero for d == 0; m untouched on error.
func (m *SquareMat) DivAssign(d float64) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return m, matrixErrorf(opDiv, err)
	}
	if err := ValidateDivisor(d); err != nil {
		return m, matrixErrorf(opDiv, err)
	}
	for k := range m.data {
		m.data[k] /= d
	}

	return m, nil
}

// MulAssign performs the matrix product m = m × b and returns m.
// MAIN DESCRIPTION:
//   - In-place standard row×column multiplication.
//
// Implementation:
//   - Stage 1: ValidateBinary(m, b).
//   - Stage 2: compute the product into a fresh buffer, so that overwriting m
//     never corrupts a later dot product (this also covers m.MulAssign(m)).
//   - Stage 3: commit the buffer into m's existing storage.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch; m untouched on error.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the temporary.
func (m *SquareMat) MulAssign(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return m, matrixErrorf(opMul, err)
	}
	tmp := make([]float64, len(m.data))
	mulKernel(tmp, m.data, b.data, m.n)
	copy(m.data, tmp)

	return m, nil
}

// Inc adds 1 to every cell (prefix ++) and returns the mutated m.
func (m *SquareMat) Inc() *SquareMat {
	for k := range m.data {
		m.data[k] += unit
	}

	return m
}

// Dec subtracts 1 from every cell (prefix --) and returns the mutated m.
func (m *SquareMat) Dec() *SquareMat {
	for k := range m.data {
		m.data[k] -= unit
	}

	return m
}

// PostInc is postfix ++: it snapshots m, increments m, and returns the snapshot.
func (m *SquareMat) PostInc() *SquareMat {
	snap := m.Copy()
	m.Inc()

	return snap
}

// PostDec is postfix --: it snapshots m, decrements m, and returns the snapshot.
func (m *SquareMat) PostDec() *SquareMat {
	snap := m.Copy()
	m.Dec()

	return snap
}

// ---------- binary (non-mutating) operators: Copy → compound → return ----------

// Add returns m + b. Neither operand is modified.
func (m *SquareMat) Add(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return m.Copy().AddAssign(b)
}

// Sub returns m - b. Neither operand is modified.
func (m *SquareMat) Sub(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return m.Copy().SubAssign(b)
}

// Hadamard returns the element-wise product m ⊙ b.
func (m *SquareMat) Hadamard(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return m.Copy().HadamardAssign(b)
}

// Mod returns a copy of m with every cell reduced modulo k.
func (m *SquareMat) Mod(k int) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMod, err)
	}
	if err := ValidateModulus(k); err != nil {
		return nil, matrixErrorf(opMod, err)
	}

	return m.Copy().ModAssign(k)
}

// Scale returns alpha·m. See ScaleBy for the scalar-first spelling.
func (m *SquareMat) Scale(alpha float64) *SquareMat {
	return m.Copy().ScaleAssign(alpha)
}

// Div returns m / d.
func (m *SquareMat) Div(d float64) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	if err := ValidateDivisor(d); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return m.Copy().DivAssign(d)
}

// Mul returns the matrix product m × b. Not commutative in general.
func (m *SquareMat) Mul(b *SquareMat) (*SquareMat, error) {
	if err := ValidateBinary(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return m.Copy().MulAssign(b)
}

// Neg returns the unary minus of m, computed as (zero matrix) - m.
func (m *SquareMat) Neg() *SquareMat {
	out := m.withSamePolicy(m.n)
	addSubKernel(out.data, out.data, m.data, -1)

	return out
}

// Transpose returns mᵀ: a copy with cell (i,j) swapped with (j,i) for all i<j.
// Complexity: O(n²).
func (m *SquareMat) Transpose() *SquareMat {
	out := m.Copy()
	n := out.n
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out.data[i*n+j], out.data[j*n+i] = out.data[j*n+i], out.data[i*n+j]
		}
	}

	return out
}

// Pow returns m raised to exp by repeated multiplication.
// MAIN DESCRIPTION:
//   - Start from the identity of m's size and multiply by m exactly exp times.
//
// Behavior highlights:
//   - exp == 0 yields the identity (also for the zero matrix).
//   - m is never modified.
//
// Complexity:
//   - Time O(exp·n³), Space O(n²): one accumulator and one scratch buffer reused
//     across iterations.
func (m *SquareMat) Pow(exp uint) *SquareMat {
	acc := m.withSamePolicy(m.n)
	for i := 0; i < m.n; i++ {
		acc.data[i*m.n+i] = 1.0
	}
	scratch := make([]float64, len(m.data))
	for e := uint(0); e < exp; e++ {
		mulKernel(scratch, acc.data, m.data, m.n)
		acc.data, scratch = scratch, acc.data
	}

	return acc
}
