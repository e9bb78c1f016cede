// SPDX-License-Identifier: MIT
package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, lvl)

	lvl, err = ParseLevel("loud")
	require.Error(t, err)
	require.Contains(t, err.Error(), `level "loud"`)
	require.Equal(t, zapcore.InfoLevel, lvl)
}

func TestNew(t *testing.T) {
	lvl := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	lggr, err := New(lvl)
	require.NoError(t, err)
	require.Equal(t, "sqmat", lggr.Named("sqmat").Name())

	lvl.SetLevel(zapcore.DebugLevel)
	require.True(t, lvl.Enabled(zapcore.DebugLevel))
}

func TestTestObserved_FiltersByLevel(t *testing.T) {
	lggr, logs := TestObserved(t, zapcore.WarnLevel)
	lggr = lggr.Named("eval")

	lggr.Infow("skipped")
	lggr.Warnw("non-finite result", "op", "pow")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "non-finite result", entries[0].Message)
	require.Equal(t, "eval", entries[0].LoggerName)
	require.Equal(t, "pow", entries[0].ContextMap()["op"])
}

func TestNop(t *testing.T) {
	lggr := Nop()
	lggr.Errorw("dropped")
	require.NoError(t, lggr.Sync())
	require.NotNil(t, Test(t))
}
