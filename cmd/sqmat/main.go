// SPDX-License-Identifier: MIT

// Command sqmat prints, evaluates and converts dense square matrices.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/sqmat/internal/cli"
	"github.com/katalvlaran/sqmat/internal/config"
	"github.com/katalvlaran/sqmat/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	level := zap.NewAtomicLevelAt(lvl)
	lggr, err := logger.New(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = lggr.Sync() }()

	root := cli.NewRootCmd(cli.Deps{Logger: lggr.Named("sqmat"), Config: cfg, Level: &level})
	if err = root.Execute(); err != nil {
		lggr.Errorw("command failed", "err", err)
		return 1
	}

	return 0
}
