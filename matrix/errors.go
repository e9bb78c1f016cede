// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operators MUST return these sentinels and tests MUST check them
// via errors.Is. No operator panics on user-triggered error conditions.
// Panics are reserved for programmer errors (MustNew, nonsensical WithX values)
// and for the unchecked Row view.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON THE ERROR FAMILY
// ------------------------
// Every argument violation is a member of a single family rooted at
// ErrInvalidArgument. The specific sentinels below are built with %w over the
// root, so a caller may match either the precise condition
// (errors.Is(err, ErrDivideByZero)) or the whole family
// (errors.Is(err, ErrInvalidArgument)). Call sites add an operation tag via
// matrixErrorf; the sentinel chain is preserved.

var (
	// ErrInvalidArgument is the root of every argument violation raised by this package.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidSize is returned when a requested size is not positive, or when
	// row data handed to NewFromRows is ragged or not square.
	ErrInvalidSize = fmt.Errorf("%w: size must be > 0 and square", ErrInvalidArgument)

	// ErrSizeMismatch indicates that two operands of a two-matrix operator differ in size.
	// Call sites wrap it with both sizes, e.g. "Add: size 5 vs 3: ...".
	ErrSizeMismatch = fmt.Errorf("%w: size mismatch", ErrInvalidArgument)

	// ErrDivideByZero is returned by Div/DivAssign for a zero scalar.
	ErrDivideByZero = fmt.Errorf("%w: division by zero", ErrInvalidArgument)

	// ErrModuloByZero is returned by Mod/ModAssign for a zero modulus.
	ErrModuloByZero = fmt.Errorf("%w: modulo by zero", ErrInvalidArgument)

	// ErrMinorOfScalar is returned when a minor is requested from a 1×1 matrix.
	// Det never surfaces it: the 1×1 case is its recursion base.
	ErrMinorOfScalar = fmt.Errorf("%w: minor of a 1x1 matrix", ErrInvalidArgument)

	// ErrNaNInf signals a NaN or ±Inf value on ingestion while the numeric policy
	// (WithValidateNaNInf) is enabled.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil *SquareMat (receiver or operand) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// The checked accessors (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
