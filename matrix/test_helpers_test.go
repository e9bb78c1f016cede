// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by every matrix test file.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqmat/matrix"
)

// eps is the absolute tolerance for cell comparisons in tests.
const eps = 1e-4

// defaultSize is the size of the shared 3×3 fixtures.
const defaultSize = 3

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*SquareMat) paths of AllClose and Fprint.
type hide struct{ matrix.Matrix }

// mustSquare allocates an n×n zero matrix or fails the test.
func mustSquare(tb testing.TB, n int, opts ...matrix.Option) *matrix.SquareMat {
	tb.Helper()
	m, err := matrix.New(n, opts...)
	require.NoError(tb, err)

	return m
}

// filled builds a matrix from literal rows or fails the test.
func filled(tb testing.TB, rows [][]float64) *matrix.SquareMat {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// identity returns I_n or fails the test.
func identity(tb testing.TB, n int) *matrix.SquareMat {
	tb.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(tb, err)

	return m
}

// first is the primary 3×3 fixture; det(first) = 97.6.
func first(tb testing.TB) *matrix.SquareMat {
	return filled(tb, [][]float64{
		{4.5, 8.0, 7.0},
		{2.0, 0.0, -12.0},
		{3.3, 5.6, -2.1},
	})
}

// second is the secondary 3×3 fixture.
func second(tb testing.TB) *matrix.SquareMat {
	return filled(tb, [][]float64{
		{6.7, 3.2, 50},
		{-6.6, 19, -87},
		{6.1, -8.8, 4},
	})
}

// cells copies every cell of m into fresh rows, for before/after comparisons.
func cells(m *matrix.SquareMat) [][]float64 {
	out := make([][]float64, m.Size())
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}

	return out
}

// requireCellsClose asserts equal sizes and |want-got| ≤ eps on every cell.
func requireCellsClose(tb testing.TB, want, got *matrix.SquareMat) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Equal(tb, want.Size(), got.Size(), "size")
	for i := 0; i < want.Size(); i++ {
		for j := 0; j < want.Size(); j++ {
			require.InDeltaf(tb, want.Row(i)[j], got.Row(i)[j], eps, "cell (%d,%d)", i, j)
		}
	}
}

// requireRowsClose is requireCellsClose against literal rows.
func requireRowsClose(tb testing.TB, want [][]float64, got *matrix.SquareMat) {
	tb.Helper()
	requireCellsClose(tb, filled(tb, want), got)
}

// randomFill writes deterministic pseudo-random values in [-1,1) into m.
func randomFill(tb testing.TB, m *matrix.SquareMat, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	}))
}
