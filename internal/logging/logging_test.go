package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, false)
	logger.Debug("hidden")
	logger.Warn("shown", "url", "https://megaup.net/x")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged without debug mode: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "megaup.net") {
		t.Errorf("warning missing from output: %q", out)
	}
}

func TestDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, true)
	logger.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message missing in debug mode: %q", buf.String())
	}
}
