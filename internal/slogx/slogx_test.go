package slogx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Phase_WritesAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.Phase(context.Background(), "pragma", "Token.sol")

	out := buf.String()
	assert.Contains(t, out, "phase")
	assert.Contains(t, out, "pragma")
	assert.Contains(t, out, "Token.sol")
}

func Test_PhaseDone_SuppressedBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.PhaseDone(context.Background(), "pragma", "Token.sol", 3)

	assert.Empty(t, buf.String())
}

func Test_PhaseDone_WritesAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelDebug)

	l.PhaseDone(context.Background(), "pragma", "Token.sol", 3)

	out := buf.String()
	assert.Contains(t, out, "phase done")
	assert.Contains(t, out, "diagnostics=3")
}

func Test_Discard_SuppressesEverything(t *testing.T) {
	l := Discard()
	l.Phase(context.Background(), "pragma", "Token.sol")
	l.PhaseDone(context.Background(), "pragma", "Token.sol", 0)
	// No panic and nothing observable; Discard writes to io.Discard.
}

func Test_Default_VerbosityControlsLevel(t *testing.T) {
	assert.True(t, Default(0).Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, Default(0).Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, Default(1).Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, Default(2).Enabled(context.Background(), slog.LevelDebug))
}
