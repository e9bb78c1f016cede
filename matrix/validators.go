// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep operators minimal by delegating nil/size/scalar checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Size).
//  - Every compound operator calls its validator BEFORE touching a cell; this is
//    what makes "fail before mutating" hold.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *SquareMat) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b have equal sizes. Assumes both are non-nil.
// The error message names both sizes ("size 5 vs 3").
// Complexity: O(1).
func ValidateSameSize(a, b *SquareMat) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", fmt.Errorf("size %d vs %d: %w", a.n, b.n, ErrSizeMismatch))
	}

	return nil
}

// ValidateBinary is the composite NotNil(a) → NotNil(b) → SameSize check used
// by every two-matrix operator.
// Complexity: O(1).
func ValidateBinary(a, b *SquareMat) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}

// ValidateSize ensures a requested dimension is positive.
func ValidateSize(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidateSize", fmt.Errorf("size %d: %w", n, ErrInvalidSize))
	}

	return nil
}

// ValidateDivisor rejects a zero scalar divisor.
func ValidateDivisor(d float64) error {
	if d == 0 {
		return validatorErrorf("ValidateDivisor", ErrDivideByZero)
	}

	return nil
}

// ValidateModulus rejects a zero scalar modulus.
func ValidateModulus(k int) error {
	if k == 0 {
		return validatorErrorf("ValidateModulus", ErrModuloByZero)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf.
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}
