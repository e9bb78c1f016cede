// SPDX-License-Identifier: MIT

// Package matrix - SquareMat storage (row-major) & accessors.
//
// Purpose:
//   - Provide a single contiguous row-major buffer with the index formula i*n + j.
//   - Guarantee value semantics: every SquareMat exclusively owns its buffer;
//     Clone/Copy/Assign deep-copy, nothing is ever shared between instances.
//   - Offer both a checked surface (At/Set return errors) and the unchecked
//     row view (Row) that gives m.Row(i)[j] cell access.
//
// Concurrency:
//   - No internal locking. Concurrent reads of one instance are safe; any
//     concurrent mutation of the same instance (compound operators, Set, writes
//     through Row) is a data race and needs external synchronization.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set/Row: O(1); Clone/Copy/Assign: O(n²).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxApply  = "Apply"
	ctxNew    = "New"
	ctxRows   = "NewFromRows"
	ctxCopy   = "copyFrom"
	ctxMinor  = "minor"
	ctxRowSet = "SetRow"
)

// cellErrorf wraps an error with a uniform SquareMat context and callsite indices.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SquareMat.%s(%d,%d): %w", method, row, col, err)
}

// SquareMat is a dense n×n matrix of float64 values.
//   - n is the size; fixed for the object's lifetime except across Assign.
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//   - eps and validateNaNInf are the per-instance numeric policy (see options.go).
type SquareMat struct {
	n              int
	data           []float64
	eps            float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*SquareMat)(nil)
	_ fmt.Stringer = (*SquareMat)(nil)
)

// New creates a size×size zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation and functional numeric policy.
//
// Implementation:
//   - Stage 1: validate size > 0; else ErrInvalidSize.
//   - Stage 2: allocate a zero-filled buffer of size*size cells.
//   - Stage 3: resolve options into the per-instance policy.
//
// Errors:
//   - ErrInvalidSize (is ErrInvalidArgument) for size <= 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(size int, opts ...Option) (*SquareMat, error) {
	if err := ValidateSize(size); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	o := gatherOptions(opts...)

	return &SquareMat{
		n:              size,
		data:           make([]float64, size*size), // make() zero-fills deterministically
		eps:            o.eps,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests, examples and
// package-level fixtures with constant sizes.
func MustNew(size int, opts ...Option) *SquareMat {
	m, err := New(size, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// NewFromRows builds a matrix from row-major data, copying every value.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures and decoded documents.
//
// Implementation:
//   - Stage 1: require len(rows) > 0 and len(rows[i]) == len(rows) for every i.
//   - Stage 2: allocate via New, then copy row by row (policy-checked when enabled).
//
// Errors:
//   - ErrInvalidSize for empty, ragged or non-square input.
//   - ErrNaNInf for a non-finite value when WithValidateNaNInf is set.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFromRows(rows [][]float64, opts ...Option) (*SquareMat, error) {
	n := len(rows)
	m, err := New(n, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxRows, err)
	}
	for i := 0; i < n; i++ {
		if err = m.SetRow(i, rows[i]); err != nil {
			return nil, matrixErrorf(ctxRows, err)
		}
	}

	return m, nil
}

// Size returns the fixed dimension n.
func (m *SquareMat) Size() int { return m.n }

// Rows returns the row count (== Size). Complexity: O(1).
func (m *SquareMat) Rows() int { return m.n }

// Cols returns the column count (== Size). Complexity: O(1).
func (m *SquareMat) Cols() int { return m.n }

// Epsilon returns the tolerance used by ApproxEqual.
func (m *SquareMat) Epsilon() float64 { return m.eps }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *SquareMat) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange. Never panics.
func (m *SquareMat) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, cellErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for a non-finite v when the policy is on.
//
// The matrix is unchanged on error.
func (m *SquareMat) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cellErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return cellErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// SetRow copies vals into row i. len(vals) must equal Size.
// Validation happens before the first write: on error the row is unchanged.
func (m *SquareMat) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.n {
		return cellErrorf(ctxRowSet, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.n {
		return cellErrorf(ctxRowSet, i, len(vals), fmt.Errorf("row length %d vs %d: %w", len(vals), m.n, ErrInvalidSize))
	}
	if m.validateNaNInf {
		for j, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return cellErrorf(ctxRowSet, i, j, ErrNaNInf)
			}
		}
	}
	copy(m.data[i*m.n:(i+1)*m.n], vals)

	return nil
}

// Row returns a mutable view of row i backed by the matrix's own buffer.
// MAIN DESCRIPTION:
//   - The Go spelling of m[row][col]: m.Row(i)[j] reads or writes a cell.
//
// Behavior highlights:
//   - Unchecked: an out-of-range i or j panics through Go's slice bounds checks;
//     staying in range is the caller's responsibility.
//   - The view is capped to the row (full slice expression), so append on it
//     reallocates instead of spilling into row i+1.
//   - No ownership transfer: the view aliases storage that Assign may replace
//     when the size changes. Do not retain a view across Assign.
//   - Writes through the view bypass the NaN/Inf policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *SquareMat) Row(i int) []float64 {
	lo := i * m.n
	hi := lo + m.n

	return m.data[lo:hi:hi]
}

// Clone returns a deep copy (new buffer, same numeric policy) as a Matrix.
func (m *SquareMat) Clone() Matrix { return m.Copy() }

// Copy is the typed form of Clone: the copy-constructor of SquareMat.
// Complexity: O(n²) time and space.
func (m *SquareMat) Copy() *SquareMat {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &SquareMat{
		n:              m.n,
		data:           cp,
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
}

// Assign makes m an element-wise copy of other and returns m for chaining.
// MAIN DESCRIPTION:
//   - Value assignment (m = other) with deep-copy semantics.
//
// Implementation:
//   - Stage 1: self-assignment (identity) or nil other is a no-op.
//   - Stage 2: on a size change, drop the current buffer and allocate one of other's size.
//   - Stage 3: copy every cell; same-size assignment reuses the existing buffer.
//
// Behavior highlights:
//   - The numeric policy of m is kept; only size and values come from other.
//   - Row views taken before a resizing Assign keep pointing at the old buffer.
//
// Complexity:
//   - Time O(n²); allocates only when sizes differ.
func (m *SquareMat) Assign(other *SquareMat) *SquareMat {
	if other == nil || m == other {
		return m
	}
	if m.n != other.n {
		m.n = other.n
		m.data = make([]float64, other.n*other.n)
	}
	_ = m.copyFrom(other) // sizes are equal past the resize above

	return m
}

// copyFrom overwrites every cell of m with the matching cell of other.
// Fails with ErrSizeMismatch on differing sizes (unreachable through Assign).
func (m *SquareMat) copyFrom(other *SquareMat) error {
	if err := ValidateSameSize(m, other); err != nil {
		return matrixErrorf(ctxCopy, err)
	}
	copy(m.data, other.data)

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
// Complexity: O(n²) time, O(1) space.
func (m *SquareMat) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v), all-or-nothing.
// MAIN DESCRIPTION:
//   - In-place map in deterministic row-major order.
//
// Implementation:
//   - Stage 1: compute every new value into a staging buffer.
//   - Stage 2: reject NaN/Inf when the policy is enabled (matrix untouched).
//   - Stage 3: commit the staging buffer.
//
// Errors:
//   - ErrNaNInf with the first offending coordinates (policy ON only).
//
// Complexity:
//   - Time O(n²), Space O(n²) for the staging buffer.
func (m *SquareMat) Apply(f func(i, j int, v float64) float64) error {
	staged := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return cellErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+j] = nv
		}
	}
	copy(m.data, staged)

	return nil
}

// withSamePolicy allocates a zero matrix of size n carrying m's numeric policy.
func (m *SquareMat) withSamePolicy(n int) *SquareMat {
	return &SquareMat{
		n:              n,
		data:           make([]float64, n*n),
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
	}
}
