// Package sqmat is a small toolkit for dense square matrices of real numbers:
// a value type with a closed operator algebra, document I/O, and a command
// line front end.
//
// What is in the box?
//
//	A dependency-light library plus tooling that brings together:
//		• Arithmetic: +, -, matrix product, Hadamard product, scalar scale/div/mod
//		• Compound forms that mutate the receiver (AddAssign, MulAssign, Inc, ...)
//		• Powers by repeated multiplication, transpose, negation
//		• Determinant by first-row cofactor expansion
//		• Sum-based ordering (Equal, Less, ...) next to cell-wise AllClose
//		• YAML and TOML matrix documents
//		• The sqmat command: demo, show, det, eval
//
// Under the hood, everything is organized under these packages:
//
//	matrix/          SquareMat, operators, validators, options, grid rendering
//	matrixio/        YAML/TOML documents ({rows: [[...]]}) to and from SquareMat
//	internal/config/ SQMAT_* environment defaults
//	internal/logger/ zap-backed structured logging for the command
//	internal/cli/    cobra command tree
//	cmd/sqmat/       the binary
//	examples/        a runnable Markov-chain walkthrough
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewIdentity(2)
//	p, _ := a.Mul(b)           // p == a
//	a.AddAssign(p)             // a = 2a
//	fmt.Println(a.Det())       // -8
//	fmt.Print(a.Pow(2))        // bordered grid
//
// See matrix/doc.go for the operator table, ordering semantics and errors.
package sqmat
