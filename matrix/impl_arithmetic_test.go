// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the SquareMat operator algebra.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqmat/matrix"
)

var (
	wantSum = [][]float64{
		{11.2, 11.2, 57},
		{-4.6, 19, -99},
		{9.4, -3.2, 1.9},
	}
	wantDiff = [][]float64{
		{-2.2, 4.8, -43},
		{8.6, -19, 75},
		{-2.8, 14.4, -6.1},
	}
	wantHadamard = [][]float64{
		{30.15, 25.6, 350},
		{-13.2, 0, 1044},
		{20.13, -49.28, -8.4},
	}
	wantProduct = [][]float64{
		{20.05, 104.8, -443},
		{-59.8, 112, 52},
		{-27.66, 135.44, -330.6},
	}
	wantScaled = [][]float64{
		{15.75, 28, 24.5},
		{7, 0, -42},
		{11.55, 19.6, -7.35},
	}
	wantMod3 = [][]float64{
		{1.5, 2, 1},
		{2, 0, 0},
		{0.3, 2.6, -2.1},
	}
	wantSquare = [][]float64{
		{59.35, 75.2, -79.2},
		{-30.6, -51.2, 39.2},
		{19.12, 14.64, -39.69},
	}
	wantCube = [][]float64{
		{156.115, 31.28, -320.63},
		{-110.74, -25.28, 317.88},
		{-15.657, -69.304, 41.509},
	}
)

// binaryCase describes one two-matrix operator in both of its forms.
type binaryCase struct {
	name     string
	binary   func(a, b *matrix.SquareMat) (*matrix.SquareMat, error)
	compound func(a, b *matrix.SquareMat) (*matrix.SquareMat, error)
	want     [][]float64
}

func binaryCases() []binaryCase {
	return []binaryCase{
		{"add", (*matrix.SquareMat).Add, (*matrix.SquareMat).AddAssign, wantSum},
		{"sub", (*matrix.SquareMat).Sub, (*matrix.SquareMat).SubAssign, wantDiff},
		{"hadamard", (*matrix.SquareMat).Hadamard, (*matrix.SquareMat).HadamardAssign, wantHadamard},
		{"mul", (*matrix.SquareMat).Mul, (*matrix.SquareMat).MulAssign, wantProduct},
	}
}

// TestBinaryOperators_ValuesAndPurity checks results and that operands are untouched cell by cell.
func TestBinaryOperators_ValuesAndPurity(t *testing.T) {
	for _, tc := range binaryCases() {
		t.Run(tc.name, func(t *testing.T) {
			a, b := first(t), second(t)
			beforeA, beforeB := cells(a), cells(b)

			got, err := tc.binary(a, b)
			require.NoError(t, err)
			requireRowsClose(t, tc.want, got)
			require.NotSame(t, a, got)

			require.Equal(t, beforeA, cells(a))
			require.Equal(t, beforeB, cells(b))
		})
	}
}

// TestCompoundOperators_MutateAndReturnReceiver checks in-place forms and chaining.
func TestCompoundOperators_MutateAndReturnReceiver(t *testing.T) {
	for _, tc := range binaryCases() {
		t.Run(tc.name, func(t *testing.T) {
			a, b := first(t), second(t)
			beforeB := cells(b)

			got, err := tc.compound(a, b)
			require.NoError(t, err)
			require.Same(t, a, got)
			requireRowsClose(t, tc.want, a)
			require.Equal(t, beforeB, cells(b))
		})
	}
}

// TestTwoMatrixOperators_SizeMismatch ensures every two-matrix form fails before mutating.
func TestTwoMatrixOperators_SizeMismatch(t *testing.T) {
	for _, tc := range binaryCases() {
		t.Run(tc.name, func(t *testing.T) {
			big := mustSquare(t, 5)
			randomFill(t, big, 7)
			before := cells(big)

			_, err := tc.binary(big, first(t))
			require.ErrorIs(t, err, matrix.ErrSizeMismatch)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
			require.Contains(t, err.Error(), "size 5 vs 3")

			_, err = tc.compound(big, first(t))
			require.ErrorIs(t, err, matrix.ErrSizeMismatch)
			require.Equal(t, before, cells(big))

			_, err = tc.binary(big, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

// TestBinaryOperators_Commutativity: + and ⊙ commute; - and × do not.
func TestBinaryOperators_Commutativity(t *testing.T) {
	a, b := first(t), second(t)

	ab, err := a.Add(b)
	require.NoError(t, err)
	ba, err := b.Add(a)
	require.NoError(t, err)
	requireCellsClose(t, ab, ba)

	ab, err = a.Hadamard(b)
	require.NoError(t, err)
	ba, err = b.Hadamard(a)
	require.NoError(t, err)
	requireCellsClose(t, ab, ba)

	ab, err = a.Sub(b)
	require.NoError(t, err)
	ba, err = b.Sub(a)
	require.NoError(t, err)
	require.False(t, ab.ApproxEqual(ba))

	ab, err = a.Mul(b)
	require.NoError(t, err)
	ba, err = b.Mul(a)
	require.NoError(t, err)
	require.False(t, ab.ApproxEqual(ba))
	require.True(t, ab.NotEqual(ba), "a*b and b*a differ even by sum")
}

// TestNeutralAndAbsorbingElements covers zero and identity operands.
func TestNeutralAndAbsorbingElements(t *testing.T) {
	zero := mustSquare(t, defaultSize)
	id := identity(t, defaultSize)
	a := first(t)

	sum, err := a.Add(zero)
	require.NoError(t, err)
	requireCellsClose(t, a, sum)

	diff, err := a.Sub(zero)
	require.NoError(t, err)
	requireCellsClose(t, a, diff)

	had, err := a.Hadamard(zero)
	require.NoError(t, err)
	requireCellsClose(t, zero, had)

	for _, pair := range [][2]*matrix.SquareMat{{a, zero}, {zero, a}} {
		p, err := pair[0].Mul(pair[1])
		require.NoError(t, err)
		requireCellsClose(t, zero, p)
	}

	// a *= I == a and I *= a == a.
	left := a.Copy()
	_, err = left.MulAssign(id)
	require.NoError(t, err)
	requireCellsClose(t, a, left)

	right := id.Copy()
	_, err = right.MulAssign(a)
	require.NoError(t, err)
	requireCellsClose(t, a, right)
}

// TestCompound_SelfOperand covers m op= m, which must read original values.
func TestCompound_SelfOperand(t *testing.T) {
	a := first(t)
	_, err := a.MulAssign(a)
	require.NoError(t, err)
	requireRowsClose(t, wantSquare, a)

	z := mustSquare(t, defaultSize)
	_, err = z.AddAssign(z)
	require.NoError(t, err)
	_, err = z.SubAssign(z)
	require.NoError(t, err)
	require.Zero(t, z.Sum())

	b := first(t)
	_, err = b.SubAssign(b)
	require.NoError(t, err)
	requireCellsClose(t, mustSquare(t, defaultSize), b)
}

// TestMul_Associative checks (a*b)*c ≈ a*(b*c) on sums.
func TestMul_Associative(t *testing.T) {
	a, b := first(t), second(t)
	c := mustSquare(t, defaultSize)
	randomFill(t, c, 99)

	ab, err := a.Mul(b)
	require.NoError(t, err)
	abc1, err := ab.Mul(c)
	require.NoError(t, err)

	bc, err := b.Mul(c)
	require.NoError(t, err)
	abc2, err := a.Mul(bc)
	require.NoError(t, err)

	require.InDelta(t, abc1.Sum(), abc2.Sum(), 1e-6)
	ok, err := matrix.AllClose(abc1, abc2, 1e-9, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestScale covers both call shapes, identity/zero scalars and purity.
func TestScale(t *testing.T) {
	a := first(t)
	before := cells(a)
	zero := mustSquare(t, defaultSize)

	requireRowsClose(t, wantScaled, a.Scale(3.5))
	viaFunc, err := matrix.ScaleBy(3.5, a)
	require.NoError(t, err)
	requireRowsClose(t, wantScaled, viaFunc)

	requireCellsClose(t, zero, a.Scale(0))
	requireCellsClose(t, a, a.Scale(1))
	require.Equal(t, before, cells(a))

	_, err = matrix.ScaleBy(2, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	got := a.ScaleAssign(3.5)
	require.Same(t, a, got)
	requireRowsClose(t, wantScaled, a)

	a.Assign(first(t)).ScaleAssign(0)
	requireCellsClose(t, zero, a)
}

// TestDiv covers the scalar division forms, including the zero divisor.
func TestDiv(t *testing.T) {
	a := first(t)
	before := cells(a)

	_, err := a.Div(0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	one, err := a.Div(1)
	require.NoError(t, err)
	requireCellsClose(t, a, one)

	got, err := a.Div(1 / 3.5)
	require.NoError(t, err)
	requireRowsClose(t, wantScaled, got)
	require.Equal(t, before, cells(a))

	_, err = a.DivAssign(0)
	require.ErrorIs(t, err, matrix.ErrDivideByZero)
	require.Equal(t, before, cells(a), "failed DivAssign must not mutate")

	res, err := a.DivAssign(1 / 3.5)
	require.NoError(t, err)
	require.Same(t, a, res)
	requireRowsClose(t, wantScaled, a)

	z := mustSquare(t, defaultSize)
	_, err = z.DivAssign(4.6)
	require.NoError(t, err)
	require.Zero(t, z.Sum())
}

// TestMod covers floating remainder semantics (sign of the dividend) and zero modulus.
func TestMod(t *testing.T) {
	a := first(t)
	before := cells(a)

	_, err := a.Mod(0)
	require.ErrorIs(t, err, matrix.ErrModuloByZero)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	got, err := a.Mod(3)
	require.NoError(t, err)
	requireRowsClose(t, wantMod3, got)
	require.Equal(t, before, cells(a))

	_, err = a.ModAssign(0)
	require.ErrorIs(t, err, matrix.ErrModuloByZero)
	require.Equal(t, before, cells(a))

	res, err := a.ModAssign(3)
	require.NoError(t, err)
	require.Same(t, a, res)
	requireRowsClose(t, wantMod3, a)

	z := mustSquare(t, defaultSize)
	_, err = z.ModAssign(1)
	require.NoError(t, err)
	require.Zero(t, z.Sum())
}

// TestIncDec covers prefix and postfix increment/decrement.
func TestIncDec(t *testing.T) {
	base := first(t)

	t.Run("prefix inc", func(t *testing.T) {
		m := base.Copy()
		got := m.Inc()
		require.Same(t, m, got)
		requireRowsClose(t, [][]float64{{5.5, 9, 8}, {3, 1, -11}, {4.3, 6.6, -1.1}}, m)
	})
	t.Run("postfix inc", func(t *testing.T) {
		m := base.Copy()
		snap := m.PostInc()
		require.NotSame(t, m, snap)
		requireCellsClose(t, base, snap)
		requireRowsClose(t, [][]float64{{5.5, 9, 8}, {3, 1, -11}, {4.3, 6.6, -1.1}}, m)
	})
	t.Run("prefix dec", func(t *testing.T) {
		m := base.Copy()
		got := m.Dec()
		require.Same(t, m, got)
		requireRowsClose(t, [][]float64{{3.5, 7, 6}, {1, -1, -13}, {2.3, 4.6, -3.1}}, m)
	})
	t.Run("postfix dec", func(t *testing.T) {
		m := base.Copy()
		snap := m.PostDec()
		requireCellsClose(t, base, snap)
		requireRowsClose(t, [][]float64{{3.5, 7, 6}, {1, -1, -13}, {2.3, 4.6, -3.1}}, m)
	})
}

// TestNeg covers unary minus on zero and non-zero matrices.
func TestNeg(t *testing.T) {
	zero := mustSquare(t, 4)
	requireCellsClose(t, zero, zero.Neg())

	a := first(t)
	before := cells(a)
	requireRowsClose(t, [][]float64{{-4.5, -8, -7}, {-2, 0, 12}, {-3.3, -5.6, 2.1}}, a.Neg())
	require.Equal(t, before, cells(a))

	viaFunc, err := matrix.Neg(a)
	require.NoError(t, err)
	requireCellsClose(t, a.Neg(), viaFunc)
}

// TestTranspose covers ~m and its purity.
func TestTranspose(t *testing.T) {
	zero := mustSquare(t, 4)
	requireCellsClose(t, zero, zero.Transpose())

	a := first(t)
	before := cells(a)
	tr := a.Transpose()
	requireRowsClose(t, [][]float64{{4.5, 2, 3.3}, {8, 0, 5.6}, {7, -12, -2.1}}, tr)
	require.Equal(t, before, cells(a))
	requireCellsClose(t, a, tr.Transpose())

	one := filled(t, [][]float64{{3}})
	requireCellsClose(t, one, one.Transpose())
}

// TestPow covers exponents 0..3 on zero, identity and general matrices.
func TestPow(t *testing.T) {
	id := identity(t, defaultSize)
	zero := mustSquare(t, defaultSize)

	requireCellsClose(t, id, zero.Pow(0))
	for _, e := range []uint{1, 2, 10} {
		requireCellsClose(t, zero, zero.Pow(e))
	}

	a := first(t)
	before := cells(a)
	requireCellsClose(t, id, a.Pow(0))
	requireCellsClose(t, a, a.Pow(1))
	requireRowsClose(t, wantSquare, a.Pow(2))
	requireRowsClose(t, wantCube, a.Pow(3))
	require.Equal(t, before, cells(a))

	for _, e := range []uint{0, 1, 4} {
		requireCellsClose(t, id, id.Pow(e))
	}

	viaFunc, err := matrix.Pow(a, 2)
	require.NoError(t, err)
	requireRowsClose(t, wantSquare, viaFunc)
	_, err = matrix.Pow(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCompound_NilReceiver ensures validated compound forms reject a nil receiver.
func TestCompound_NilReceiver(t *testing.T) {
	var m *matrix.SquareMat
	_, err := m.AddAssign(first(t))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.DivAssign(2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.ModAssign(2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
