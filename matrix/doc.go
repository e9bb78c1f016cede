// SPDX-License-Identifier: MIT

// Package matrix implements SquareMat, a dense n×n matrix of float64 values
// with value semantics and a closed operator algebra.
//
// What & Why:
//
//	SquareMat stores its cells in one contiguous row-major buffer it exclusively
//	owns. Copy/Clone/Assign deep-copy, so every instance has an independent
//	lifetime. Each operator exists in two shapes:
//
//	  compound (mutates, returns the receiver)  binary (returns a fresh matrix)
//	  m.AddAssign(b)       m += b                m.Add(b)        m + b
//	  m.SubAssign(b)       m -= b                m.Sub(b)        m - b
//	  m.HadamardAssign(b)  m %= b  (cell-wise)   m.Hadamard(b)   m % b
//	  m.ModAssign(k)       m %= k  (int scalar)  m.Mod(k)        m % k
//	  m.ScaleAssign(a)     m *= a                m.Scale(a)      m * a, ScaleBy(a, m)
//	  m.DivAssign(d)       m /= d                m.Div(d)        m / d
//	  m.MulAssign(b)       m *= b  (product)     m.Mul(b)        m * b
//	  m.Inc() / m.PostInc()  ++m / m++
//	  m.Dec() / m.PostDec()  --m / m--
//	  m.Neg()  -m     m.Transpose()  ~m     m.Pow(e)  m ^ e     m.Det()  !m
//
//	Binary forms are always "Copy, then the compound form on the copy", so the
//	operands are never observably altered.
//
// Ordering:
//
//	Equal, NotEqual, Less, LessEqual, Greater and GreaterEqual compare the sums
//	of all cells, not the cells themselves. ApproxEqual and AllClose are the
//	cell-wise comparisons.
//
// Errors:
//
//	Every argument violation (size <= 0, size mismatch, zero divisor, zero
//	modulus, nil operand) matches errors.Is(err, ErrInvalidArgument) and a more
//	specific sentinel. Operators validate before writing, so a failed compound
//	call leaves the receiver as it was.
//
// Cell access:
//
//	m.Row(i)[j] is the unchecked mutable view (out of range panics); At/Set are
//	the checked accessors returning ErrOutOfRange.
//
// Complexity:
//
//	Element-wise and scalar operators run in O(n²); Mul/MulAssign in O(n³);
//	Pow(e) in O(e·n³); Det in O(n!) (cofactor expansion, no pivoting).
package matrix
