// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sqmat/internal/logger"
	"github.com/katalvlaran/sqmat/matrix"
)

var (
	demoLong = longDesc(`
		Fills a random matrix with values in [0, 68/7], then prints it next to a
		clone and an assigned copy, every comparison, every binary and scalar
		operator, powers 0 to 2, the determinant, the transpose, and each
		compound form applied to a fresh assignment of the original.
	`)

	demoExample = examples(`
		# 5x5 demo with a fixed seed
		sqmat demo --size 5 --seed 7

		# Narrow cells with one decimal
		sqmat demo --width 6 --precision 1
	`)
)

// demo scalars.
const (
	demoScale   = 0.76
	demoScaleIn = 0.84
	demoMod     = 2
	demoModIn   = 3
)

func newDemoCmd(deps Deps, newPrinter func(*cobra.Command) printer) *cobra.Command {
	var (
		size = deps.Config.Size
		seed = deps.Config.Seed
	)

	cmd := &cobra.Command{
		Use:     "demo",
		Short:   "Exercise every operator on a random matrix",
		Long:    demoLong,
		Example: demoExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lggr := deps.Logger.Named("demo")
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			lggr.Debugw("generating matrix", "size", size, "seed", seed)

			m, err := randomMatrix(size, seed)
			if err != nil {
				return err
			}

			return runDemo(newPrinter(cmd), lggr, m)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", size, "matrix size")
	cmd.Flags().Int64VarP(&seed, "seed", "s", seed, "random seed (0 derives one from the clock)")

	return cmd
}

// randomMatrix returns an n×n matrix with cells (r mod 69)/7.
func randomMatrix(n int, seed int64) (*matrix.SquareMat, error) {
	m, err := matrix.New(n)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	err = m.Apply(func(_, _ int, _ float64) float64 {
		return float64(rng.Intn(69)) / 7.0
	})

	return m, err
}

// runDemo prints the full operator tour for mat.
func runDemo(p printer, lggr logger.Logger, mat *matrix.SquareMat) error {
	copyMat := mat.Copy()
	assignMat := matrix.MustNew(mat.Size())
	assignMat.Assign(mat)

	steps := []func() error{
		func() error { return p.matrix("mat", mat) },
		func() error { return p.matrix("copyMat", copyMat) },
		func() error { return p.matrix("assignMat", assignMat) },
		func() error { return p.line("Is equal : %t", mat.Equal(copyMat)) },
		func() error { return p.line("Is not equal : %t", mat.NotEqual(copyMat)) },
		func() error { return p.line("Is greater than : %t", mat.Greater(copyMat)) },
		func() error { return p.line("Is greater or equal than : %t", mat.GreaterEqual(copyMat)) },
		func() error { return p.line("Is smaller than : %t", mat.Less(copyMat)) },
		func() error { return p.line("Is smaller or equal than : %t", mat.LessEqual(copyMat)) },
	}

	binary := []struct {
		title string
		op    func(*matrix.SquareMat) (*matrix.SquareMat, error)
	}{
		{"mat + copyMat", mat.Add},
		{"mat - copyMat", mat.Sub},
		{"mat hadamard copyMat", mat.Hadamard},
		{"mat * copyMat", mat.Mul},
	}
	for _, b := range binary {
		steps = append(steps, func() error {
			res, err := b.op(copyMat)
			if err != nil {
				return err
			}

			return p.matrix(b.title, res)
		})
	}

	for _, exp := range []uint{2, 1, 0} {
		steps = append(steps, func() error {
			return p.matrix(fmt.Sprintf("mat ^ %d", exp), mat.Pow(exp))
		})
	}

	steps = append(steps,
		func() error { return p.matrix("mat * 0.76", mat.Scale(demoScale)) },
		func() error {
			res, err := matrix.ScaleBy(demoScale, mat)
			if err != nil {
				return err
			}

			return p.matrix("0.76 * mat", res)
		},
		func() error {
			res, err := mat.Div(1 / demoScale)
			if err != nil {
				return err
			}

			return p.matrix("mat / (1 / 0.76)", res)
		},
		func() error {
			res, err := mat.Mod(demoMod)
			if err != nil {
				return err
			}

			return p.matrix("mat mod 2", res)
		},
		func() error { return p.matrix("-mat", mat.Neg()) },
		func() error { return p.line("|mat| : %s", p.scalar(mat.Det())) },
		func() error { return p.matrix("mat transpose", mat.Transpose()) },
	)

	compound := []struct {
		title string
		op    func(*matrix.SquareMat) error
	}{
		{"mat after += copyMat", func(a *matrix.SquareMat) error { _, err := a.AddAssign(copyMat); return err }},
		{"mat after -= copyMat", func(a *matrix.SquareMat) error { _, err := a.SubAssign(copyMat); return err }},
		{"mat after hadamard= copyMat", func(a *matrix.SquareMat) error { _, err := a.HadamardAssign(copyMat); return err }},
		{"mat after *= copyMat", func(a *matrix.SquareMat) error { _, err := a.MulAssign(copyMat); return err }},
		{"mat after *= 0.84", func(a *matrix.SquareMat) error { a.ScaleAssign(demoScaleIn); return nil }},
		{"mat after /= (1 / 0.84)", func(a *matrix.SquareMat) error { _, err := a.DivAssign(1 / demoScaleIn); return err }},
		{"mat after mod= 3", func(a *matrix.SquareMat) error { _, err := a.ModAssign(demoModIn); return err }},
		{"mat after mat++", func(a *matrix.SquareMat) error { a.PostInc(); return nil }},
		{"mat after ++mat", func(a *matrix.SquareMat) error { a.Inc(); return nil }},
		{"mat after mat--", func(a *matrix.SquareMat) error { a.PostDec(); return nil }},
		{"mat after --mat", func(a *matrix.SquareMat) error { a.Dec(); return nil }},
	}
	for _, c := range compound {
		steps = append(steps, func() error {
			if err := c.op(assignMat.Assign(mat)); err != nil {
				return err
			}

			return p.matrix(c.title, assignMat)
		})
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	lggr.Debugw("demo complete", "size", mat.Size(), "steps", len(steps))

	return nil
}
