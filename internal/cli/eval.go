// SPDX-License-Identifier: MIT
package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sqmat/matrix"
	"github.com/katalvlaran/sqmat/matrixio"
)

// ErrUnknownOp is returned by eval for an operator name it does not know.
var ErrUnknownOp = errors.New("unknown operator")

// operand kinds for the optional third argument of eval.
type operand int

const (
	operandNone operand = iota
	operandMatrix
	operandScalar
)

// evalOp binds an operator name to its implementation and operand kind.
type evalOp struct {
	operand operand
	matrix  func(a, b *matrix.SquareMat) (*matrix.SquareMat, error)
	scalar  func(a *matrix.SquareMat, s string) (*matrix.SquareMat, error)
	unary   func(a *matrix.SquareMat) *matrix.SquareMat
}

var evalOps = map[string]evalOp{
	"add":      {operand: operandMatrix, matrix: matrix.Add},
	"sub":      {operand: operandMatrix, matrix: matrix.Sub},
	"mul":      {operand: operandMatrix, matrix: matrix.Mul},
	"hadamard": {operand: operandMatrix, matrix: matrix.Hadamard},
	"scale": {operand: operandScalar, scalar: func(a *matrix.SquareMat, s string) (*matrix.SquareMat, error) {
		alpha, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("scalar %q: %w", s, err)
		}

		return a.Scale(alpha), nil
	}},
	"div": {operand: operandScalar, scalar: func(a *matrix.SquareMat, s string) (*matrix.SquareMat, error) {
		d, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("divisor %q: %w", s, err)
		}

		return a.Div(d)
	}},
	"mod": {operand: operandScalar, scalar: func(a *matrix.SquareMat, s string) (*matrix.SquareMat, error) {
		k, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("modulus %q: %w", s, err)
		}

		return a.Mod(k)
	}},
	"pow": {operand: operandScalar, scalar: func(a *matrix.SquareMat, s string) (*matrix.SquareMat, error) {
		exp, err := strconv.ParseUint(s, 10, 0)
		if err != nil {
			return nil, fmt.Errorf("exponent %q: %w", s, err)
		}

		return a.Pow(uint(exp)), nil
	}},
	"transpose": {unary: (*matrix.SquareMat).Transpose},
	"neg":       {unary: (*matrix.SquareMat).Neg},
	"inc":       {unary: func(a *matrix.SquareMat) *matrix.SquareMat { return a.Copy().Inc() }},
	"dec":       {unary: func(a *matrix.SquareMat) *matrix.SquareMat { return a.Copy().Dec() }},
}

func evalOpNames() []string {
	names := make([]string, 0, len(evalOps))
	for name := range evalOps {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

var evalExample = examples(`
	# Matrix product of two files
	sqmat eval mul a.yaml b.yaml

	# Fifth power, saved as TOML
	sqmat eval pow a.yaml 5 --out a5.toml

	# Cell-wise remainder by an integer
	sqmat eval mod a.yaml 3

	# Negative scalars go after --
	sqmat eval scale a.yaml -- -2
`)

func newEvalCmd(deps Deps, newPrinter func(*cobra.Command) printer) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "eval OP FILE [FILE|SCALAR]",
		Short: "Apply one operator to matrix files",
		Long: longDesc(`
			Applies OP to the matrix in FILE. Operators taking a second matrix
			(add, sub, mul, hadamard) read it from the next FILE; scalar operators
			(scale, div, mod, pow) parse the next argument as a number; unary
			operators (transpose, neg, inc, dec) take nothing else.

			A negative scalar must follow "--" so it is not read as a flag:
			sqmat eval scale a.yaml -- -2. Flags such as --out go before "--".

			Operators: ` + strings.Join(evalOpNames(), ", ") + `.
		`),
		Example: evalExample,
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr := deps.Logger.Named("eval")
			name := strings.ToLower(args[0])
			op, ok := evalOps[name]
			if !ok {
				return fmt.Errorf("%w %q (want one of %s)", ErrUnknownOp, args[0], strings.Join(evalOpNames(), ", "))
			}
			wantArgs := 2
			if op.operand != operandNone {
				wantArgs = 3
			}
			if len(args) != wantArgs {
				return fmt.Errorf("%s takes %d arguments, got %d", name, wantArgs, len(args))
			}

			a, err := matrixio.ReadFile(args[1])
			if err != nil {
				return err
			}

			var res *matrix.SquareMat
			switch op.operand {
			case operandMatrix:
				b, rerr := matrixio.ReadFile(args[2])
				if rerr != nil {
					return rerr
				}
				res, err = op.matrix(a, b)
			case operandScalar:
				res, err = op.scalar(a, args[2])
			default:
				res = op.unary(a)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			lggr.Debugw("evaluated", "op", name, "size", res.Size())
			if !matrix.AllFinite(res) {
				lggr.Warnw("result contains non-finite cells", "op", name)
			}

			if out != "" {
				if err = matrixio.WriteFile(out, res); err != nil {
					return err
				}
				lggr.Infow("result written", "path", out)

				return nil
			}

			return newPrinter(cmd).matrix(name, res)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to this .yaml/.yml/.toml file instead of printing it")

	return cmd
}
