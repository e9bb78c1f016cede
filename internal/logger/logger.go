// SPDX-License-Identifier: MIT

// Package logger is the structured logger used by the sqmat command.
//
// The matrix and matrixio packages never log; they return wrapped errors.
// Loggers are injected into commands and usually Named: lggr.Named("eval").
//
// Tests should use a [Test] or [TestObserved] logger; [New] is for the binary.
package logger

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is the subset of *zap.SugaredLogger the command layer relies on.
type Logger interface {
	// Name returns the fully qualified name of the logger.
	Name() string
	// Named returns a child logger with name appended.
	Named(name string) Logger

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)

	// Sync flushes any buffered log entries.
	Sync() error
}

// ParseLevel maps a level name ("debug", "info", "warn", "error") to a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logger: level %q: %w", s, err)
	}

	return lvl, nil
}

// New returns a console Logger writing to stderr. The level is shared with
// the caller, so lvl.SetLevel takes effect on a running Logger.
func New(lvl zap.AtomicLevel) (Logger, error) {
	return NewWith(func(cfg *zap.Config) {
		cfg.Level = lvl
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	})
}

// NewWith returns a Logger from a modified production [zap.Config].
func NewWith(cfgFn func(*zap.Config)) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfgFn(&cfg)
	core, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return &logger{core.Sugar()}, nil
}

// Test returns a Logger that writes through tb.Log at debug level.
func Test(tb testing.TB) Logger {
	tb.Helper()

	return &logger{zaptest.NewLogger(tb).Sugar()}
}

// TestObserved returns a test Logger and the entries it records at lvl or above.
func TestObserved(tb testing.TB, lvl zapcore.Level) (Logger, *observer.ObservedLogs) {
	tb.Helper()
	oCore, logs := observer.New(lvl)
	observe := zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, oCore)
	})

	return &logger{zaptest.NewLogger(tb, zaptest.WrapOptions(observe)).Sugar()}, logs
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &logger{zap.New(zapcore.NewNopCore()).Sugar()}
}

type logger struct {
	*zap.SugaredLogger
}

func (l *logger) Name() string {
	return l.Desugar().Name()
}

func (l *logger) Named(name string) Logger {
	return &logger{l.SugaredLogger.Named(name)}
}
