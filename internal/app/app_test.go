package app

import (
	"bytes"
	"strings"
	"testing"
)

func newHeadless(t *testing.T, opts Options) *App {
	t.Helper()
	opts.Headless = true
	a, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func TestNewHeadlessDefaults(t *testing.T) {
	a := newHeadless(t, Options{})

	if a.cfg.NumKeys != 16 {
		t.Errorf("NumKeys = %d, want 16", a.cfg.NumKeys)
	}
	if a.pipeline == nil {
		t.Error("pipeline not built")
	}
}

func TestRunHeadlessScript(t *testing.T) {
	a := newHeadless(t, Options{})
	var buf bytes.Buffer
	a.log.SetOutput(&buf)

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	// The first tap on position 6 dispatches KP_7 with its HID usage.
	if !strings.Contains(out, "dispatch KP_7 (hid usage 0x5F)") {
		t.Errorf("log missing KP_7 dispatch:\n%s", out)
	}
	// The tap after cycling to layer 1 dispatches F1.
	if !strings.Contains(out, "dispatch F1") {
		t.Errorf("log missing F1 dispatch:\n%s", out)
	}
	// The script cycles forward twice and back twice, ending on layer 0.
	if !strings.Contains(out, "Layer: 0") {
		t.Errorf("log missing final layer 0 status:\n%s", out)
	}
}

func TestRunHeadlessSnapshot(t *testing.T) {
	dir := t.TempDir()
	a := newHeadless(t, Options{SnapshotDir: dir})
	a.log.Disable()

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := a.display.Text(); !strings.Contains(got, "Layer: 0") {
		t.Errorf("final display text = %q, want layer 0", got)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Options{Headless: true, ConfigPath: "/nonexistent/gridpad.toml"})
	if err == nil {
		t.Fatal("New() error = nil, want error for missing config file")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelWarn, &buf)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown warn")
	log.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("log leaked below-level messages:\n%s", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("log missing expected messages:\n%s", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(LogLevelInfo, &buf)

	log.Info("cycle %d done", 3)

	out := buf.String()
	if !strings.Contains(out, "[INFO] gridpad: cycle 3 done") {
		t.Errorf("log line = %q, want formatted message with prefix", out)
	}
}
