package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesFormattedLines(t *testing.T) {
	var buf bytes.Buffer
	l, closeFn, err := New(Options{Level: "debug", Out: &buf})
	require.NoError(t, err)
	defer closeFn()

	l.WithField("turn", 3).WithField("game_id", "g1").Debug("tile played")

	line := buf.String()
	assert.Contains(t, line, "[debug]")
	assert.Contains(t, line, "log_test.go:")
	assert.Contains(t, line, "tile played game_id=g1 turn=3")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, _, err := New(Options{Level: "warn", Out: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	assert.Empty(t, buf.String())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewRotatingDir(t *testing.T) {
	dir := t.TempDir()
	l, closeFn, err := New(Options{Dir: dir})
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, closeFn())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
}
