// SPDX-License-Identifier: MIT

// Package matrix - bordered grid rendering for display collaborators.
//
// Layout (width 4, precision 1):
//
//	+------+------+
//	|  1.0 |  2.0 |
//	+------+------+
//	|  3.0 |  4.0 |
//	+------+------+
//
// A separator line sits above the first row and below every row. Each cell is
// formatted with %*.*f; values wider than the cell width widen that cell only.
package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Display defaults.
const (
	DefaultCellWidth = 8
	DefaultPrecision = 2
)

// ---------- Formatting literals ----------
const (
	_gridCorner = "+"
	_gridRule   = "-"
	_gridWall   = "|"
	_gridPad    = 2 // one space on each side of a cell
)

const (
	panicCellWidthInvalid = "matrix: WithCellWidth: width must be > 0"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
)

// FormatOption configures Fprint.
type FormatOption func(*formatOptions)

type formatOptions struct {
	width     int
	precision int
}

// WithCellWidth sets the minimum width of every cell. Panics on w <= 0.
func WithCellWidth(w int) FormatOption {
	if w <= 0 {
		panic(panicCellWidthInvalid)
	}

	return func(o *formatOptions) { o.width = w }
}

// WithPrecision sets the number of digits after the decimal point. Panics on p < 0.
func WithPrecision(p int) FormatOption {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *formatOptions) { o.precision = p }
}

// Fprint writes m to w as a bordered grid, one text line per matrix row.
// MAIN DESCRIPTION:
//   - Display contract for printing code: reads cells through the Matrix
//     interface only, never through storage.
//
// Implementation:
//   - Stage 1: resolve options; reject a nil matrix.
//   - Stage 2: render the whole grid into a strings.Builder.
//   - Stage 3: single Write to w.
//
// Errors:
//   - ErrNilMatrix; any error from m.At or w.Write.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the rendered text.
func Fprint(w io.Writer, m Matrix, opts ...FormatOption) error {
	if isNilMatrix(m) {
		return matrixErrorf("Fprint", ErrNilMatrix)
	}
	o := formatOptions{width: DefaultCellWidth, precision: DefaultPrecision}
	for _, set := range opts {
		set(&o)
	}

	var b strings.Builder
	if err := renderGrid(&b, m, o); err != nil {
		return matrixErrorf("Fprint", err)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// renderGrid appends the bordered grid of m to b.
func renderGrid(b *strings.Builder, m Matrix, o formatOptions) error {
	rows, cols := m.Rows(), m.Cols()
	rule := strings.Repeat(_gridRule, o.width+_gridPad)

	var sep strings.Builder
	sep.WriteString(_gridCorner)
	for j := 0; j < cols; j++ {
		sep.WriteString(rule)
		sep.WriteString(_gridCorner)
	}
	sep.WriteByte('\n')
	line := sep.String()

	b.WriteString(line)
	for i := 0; i < rows; i++ {
		b.WriteString(_gridWall)
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(b, " %*.*f %s", o.width, o.precision, v, _gridWall)
		}
		b.WriteByte('\n')
		b.WriteString(line)
	}

	return nil
}

// String renders m with the default cell width and precision.
func (m *SquareMat) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	_ = renderGrid(&b, m, formatOptions{width: DefaultCellWidth, precision: DefaultPrecision})

	return b.String()
}
