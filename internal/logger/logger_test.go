package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestEventFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Event("KILL", "abc", "monster 3 slain")

	line := buf.String()
	if !strings.Contains(line, "[INFO] ") {
		t.Errorf("Expected info prefix, got %q", line)
	}
	if !strings.Contains(line, "[EVENT:KILL] session:abc | monster 3 slain") {
		t.Errorf("Expected formatted event, got %q", line)
	}
}

func TestLevelsUseDistinctPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Warn("low")
	l.Error("bad")

	out := buf.String()
	if !strings.Contains(out, "[WARN] ") || !strings.Contains(out, "[ERROR] ") {
		t.Errorf("Expected warn and error prefixes, got %q", out)
	}
}
