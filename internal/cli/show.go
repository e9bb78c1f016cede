// SPDX-License-Identifier: MIT
package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sqmat/matrixio"
)

var showExample = examples(`
	sqmat show m.yaml
	sqmat show --width 10 --precision 4 m.toml
`)

func newShowCmd(deps Deps, newPrinter func(*cobra.Command) printer) *cobra.Command {
	return &cobra.Command{
		Use:     "show FILE",
		Short:   "Print a matrix file as a grid",
		Example: showExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixio.ReadFile(args[0])
			if err != nil {
				return err
			}
			deps.Logger.Named("show").Debugw("loaded matrix", "path", args[0], "size", m.Size())

			return newPrinter(cmd).matrix(args[0], m)
		},
	}
}

func newDetCmd(deps Deps, newPrinter func(*cobra.Command) printer) *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "Print the determinant of a matrix file",
		Long: longDesc(`
			Prints the determinant computed by cofactor expansion along the first
			row. The cost grows factorially with the size.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrixio.ReadFile(args[0])
			if err != nil {
				return err
			}
			lggr := deps.Logger.Named("det")
			if m.Size() > detWarnSize {
				lggr.Warnw("cofactor expansion on a large matrix may be slow", "size", m.Size())
			}
			p := newPrinter(cmd)

			return p.line("%s", p.scalar(m.Det()))
		},
	}
}

// detWarnSize is the largest size det runs without a slowness warning.
const detWarnSize = 10
