// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, function-shaped entry points next to the method forms
//     (matrix.Add(a, b) alongside a.Add(b)).
//   - Host the scalar-first spelling of scalar multiplication (ScaleBy(alpha, m)),
//     which delegates to the matrix-first method.
//   - Validate nil operands for the operators whose methods cannot fail, so
//     function callers always get an error instead of a nil dereference.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the methods.
//   - Results carry the numeric policy of the first (left) operand.

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidSize for n <= 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*SquareMat, error) {
	I, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns the identity with m's size and numeric policy.
func IdentityLike(m *SquareMat) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return m.Pow(0), nil
}

// ZerosLike returns a zero matrix with m's size and numeric policy.
func ZerosLike(m *SquareMat) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return m.withSamePolicy(m.n), nil
}

// ---------- Two-matrix operators ----------

// Add returns a + b.
func Add(a, b *SquareMat) (*SquareMat, error) { return a.Add(b) }

// Sub returns a - b.
func Sub(a, b *SquareMat) (*SquareMat, error) { return a.Sub(b) }

// Mul returns the matrix product a × b.
func Mul(a, b *SquareMat) (*SquareMat, error) { return a.Mul(b) }

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b *SquareMat) (*SquareMat, error) { return a.Hadamard(b) }

// ---------- Scalar operators ----------

// ScaleBy returns alpha·m. It is the scalar-first form of (*SquareMat).Scale
// and yields the same result: scalar multiplication is commutative.
func ScaleBy(alpha float64, m *SquareMat) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return m.Scale(alpha), nil
}

// Div returns m / d. Errors: ErrDivideByZero.
func Div(m *SquareMat, d float64) (*SquareMat, error) { return m.Div(d) }

// Mod returns m mod k cell-wise. Errors: ErrModuloByZero.
func Mod(m *SquareMat, k int) (*SquareMat, error) { return m.Mod(k) }

// Pow returns m^exp by repeated multiplication; Pow(m, 0) is the identity.
func Pow(m *SquareMat, exp uint) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	return m.Pow(exp), nil
}

// ---------- Unary operators ----------

// Transpose returns mᵀ.
func Transpose(m *SquareMat) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Neg returns -m.
func Neg(m *SquareMat) (*SquareMat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return m.Neg(), nil
}

// Det returns the determinant of m (first-row cofactor expansion).
func Det(m *SquareMat) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return m.Det(), nil
}

// ---------- Numeric compare & sanity ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// AI-Hints:
//   - AllClose with small atol/rtol is the cell-wise check to use in tests;
//     Equal compares sums only.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// AllFinite reports whether every cell of m is finite. Arithmetic is not
// policed by the NaN/Inf policy, so callers that chain many operators (Pow on
// large values, Div by tiny scalars) can use it to detect overflow.
func AllFinite(m *SquareMat) bool {
	if m == nil {
		return true
	}

	return ewFirstNonFinite(m.data) < 0
}
