package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("Admit: bay=%d", 1)
	log.Warn("Admit: slot full date=%s", "2025-10-15")

	out := buf.String()
	assert.NotContains(t, out, "bay=1")
	assert.Contains(t, out, "slot full date=2025-10-15")
	assert.Contains(t, out, "level=warning")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
