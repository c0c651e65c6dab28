package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}
	logger.Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message written at info level")
	}

	buf.Reset()
	logger = New(&buf, true)
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}
	logger.Debug("shown", "k", "v")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "k=v") {
		t.Errorf("debug output = %q", buf.String())
	}
}
