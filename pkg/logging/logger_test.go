package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	log := New(&buf, LevelWarn)

	log.Debug("debug msg")
	log.Info("info msg")
	log.Warn("warn msg", "key", "value")
	log.Error("error msg")

	out := buf.String()
	assert.NotContains(t, out, "debug msg")
	assert.NotContains(t, out, "info msg")
	assert.Contains(t, out, "warn msg")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "error msg")
}

func TestWithCarriesContext(t *testing.T) {
	var buf strings.Builder
	log := New(&buf, LevelInfo).With("import_id", "abc123")

	log.Info("started")
	assert.Contains(t, buf.String(), "import_id=abc123")
}

func TestNopLoggerIsSilent(t *testing.T) {
	log := Nop()
	log.Info("ignored")
	log.With("k", "v").Error("also ignored")
}
