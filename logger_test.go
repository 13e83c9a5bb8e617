package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, slog.LevelInfo)

	l.Debug("hidden")
	l.Info("shader compiled", "stage", "VERTEX_SHADER")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Debug message must be filtered out, got %q", out)
	}
	if !strings.Contains(out, `msg="shader compiled" stage=VERTEX_SHADER`) {
		t.Errorf("Unexpected output %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("Time must be omitted, got %q", out)
	}
}
