package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Info("ready")
	l.Warn("careful")
	l.Error("broken")
	l.Debugf("hidden %d", 2)

	out := buf.String()
	assert.Contains(t, out, "[INFO] ready")
	assert.Contains(t, out, "[WARN] careful")
	assert.Contains(t, out, "[ERROR] broken")
	assert.NotContains(t, out, "hidden")
}

func TestDebugAndTags(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true).With("session=abc").With("cmd")

	l.Debugf("ignored %q", "JUMP")

	assert.Contains(t, buf.String(), `[DEBUG] [session=abc cmd] ignored "JUMP"`)
}
