// SPDX-License-Identifier: MIT

// Package cli builds the sqmat command tree.
//
// Every subcommand writes results to cmd.OutOrStdout() and logs through the
// injected Logger, so tests can capture both.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/sqmat/internal/config"
	"github.com/katalvlaran/sqmat/internal/logger"
	"github.com/katalvlaran/sqmat/matrix"
)

// Deps are the collaborators injected into the command tree.
type Deps struct {
	Logger logger.Logger
	Config config.Config
	// Level, when set, is updated from --log-level before a command runs.
	Level *zap.AtomicLevel
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel  string
	width     int
	precision int
	table     bool
}

// printer renders matrices and scalars with the resolved display flags.
type printer struct {
	w         io.Writer
	width     int
	precision int
	table     bool // labelled table view instead of the plain grid
}

func (p printer) matrix(title string, m *matrix.SquareMat) error {
	if _, err := fmt.Fprintf(p.w, "%s :\n", title); err != nil {
		return err
	}
	if p.table {
		return p.labelled(m)
	}

	return matrix.Fprint(p.w, m, matrix.WithCellWidth(p.width), matrix.WithPrecision(p.precision))
}

func (p printer) scalar(v float64) string {
	return strconv.FormatFloat(v, 'f', p.precision, 64)
}

func (p printer) line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)

	return err
}

var rootLong = longDesc(`
	sqmat works with dense square matrices of real numbers.

	Matrix files are YAML or TOML documents with a single "rows" key, chosen by
	file extension (.yaml, .yml, .toml). Defaults come from SQMAT_* environment
	variables; flags override them.
`)

// NewRootCmd returns the sqmat root command with all subcommands attached.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	g := &globalFlags{
		logLevel:  deps.Config.LogLevel,
		width:     deps.Config.CellWidth,
		precision: deps.Config.Precision,
	}

	root := &cobra.Command{
		Use:           "sqmat",
		Short:         "Dense square matrix arithmetic",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if g.width <= 0 {
				return fmt.Errorf("--width must be > 0, got %d", g.width)
			}
			if g.precision < 0 {
				return fmt.Errorf("--precision must be >= 0, got %d", g.precision)
			}
			if !cmd.Flags().Changed("log-level") {
				return nil
			}
			lvl, err := logger.ParseLevel(g.logLevel)
			if err != nil {
				return err
			}
			if deps.Level != nil {
				deps.Level.SetLevel(lvl)
			}

			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", g.logLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().IntVar(&g.width, "width", g.width, "minimum cell width of printed grids")
	root.PersistentFlags().IntVar(&g.precision, "precision", g.precision, "digits after the decimal point")
	root.PersistentFlags().BoolVar(&g.table, "table", false, "print matrices as tables with row and column indices")

	newPrinter := func(cmd *cobra.Command) printer {
		return printer{w: cmd.OutOrStdout(), width: g.width, precision: g.precision, table: g.table}
	}

	root.AddCommand(
		newDemoCmd(deps, newPrinter),
		newShowCmd(deps, newPrinter),
		newDetCmd(deps, newPrinter),
		newEvalCmd(deps, newPrinter),
	)

	return root
}
