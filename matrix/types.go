// SPDX-License-Identifier: MIT

// Package matrix: the read/write Matrix contract shared by the square storage,
// the display collaborator and the cell-wise comparison kernels.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// *SquareMat is the only implementation in this module; the interface lets
// collaborators (printing, AllClose, codecs) work without reaching into storage.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
