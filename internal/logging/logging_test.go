package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "warn")
	require.NoError(t, err)

	log.Named("scan").Debug("hidden")
	log.Named("scan").Warn("shown", zap.Int("n", 3))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "scan")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"n": 3`)
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug")
	require.NoError(t, err)

	log.Debug("visible")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `log level "loud"`)
}

func TestLevelsParse(t *testing.T) {
	for _, lvl := range Levels {
		_, err := New(&bytes.Buffer{}, lvl)
		assert.NoError(t, err, lvl)
	}
}
