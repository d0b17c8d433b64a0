package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/hugo-lorenzo-mato/swatch/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("DefaultConfig().Level = %q, want \"info\"", cfg.Level)
	}
	if cfg.Format != "auto" {
		t.Errorf("DefaultConfig().Format = %q, want \"auto\"", cfg.Format)
	}
	if cfg.Output == nil {
		t.Error("DefaultConfig().Output should not be nil")
	}
}

func TestLogger_NilOutput(t *testing.T) {
	logger := New(Config{Level: "info", Format: "text"})
	if logger == nil {
		t.Fatal("New() with nil output should not return nil")
	}
	logger.Debug("suppressed")
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "json", Output: &buf})

	logger.WithTheme("dark").WithStyle("header").Debug("resolved", "name", "--accent")

	output := buf.String()
	for _, want := range []string{`"theme":"dark"`, `"style":"header"`, `"name":"--accent"`, `"level":"DEBUG"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in %s", want, output)
		}
	}
}

func TestLogger_TextFormatFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "text", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("info should be filtered at warn level: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected key=value in %s", output)
	}
}

func TestLogger_AutoFormatOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: "info", Format: "auto", Output: &buf}).Info("plain")
	testutil.AssertContains(t, buf.String(), "msg=plain")
}

func TestParseLevel_AllLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidLevelAndFormat(t *testing.T) {
	if !ValidLevel("debug") || ValidLevel("trace") {
		t.Error("ValidLevel mismatch")
	}
	if !ValidFormat("json") || ValidFormat("xml") {
		t.Error("ValidFormat mismatch")
	}
}

func TestNewNop_Operations(t *testing.T) {
	logger := NewNop()
	logger.Debug("debug")
	logger.Info("info")
	logger.With("key", "value").Warn("with key")
	logger.WithTheme("dark").Error("with theme")
}

func TestPrettyHandler_AllLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := &Logger{Logger: slog.New(NewPrettyHandler(&buf, slog.LevelDebug, false))}

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", "variable", "--accent")

	output := buf.String()
	for _, want := range []string{"DBG", "INF", "WRN", "ERR", "variable=--accent"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output %q", want, output)
		}
	}
}

func TestPrettyHandler_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, slog.LevelInfo, false).
		WithAttrs([]slog.Attr{slog.String("theme", "dark")}).
		WithGroup("paint")
	slog.New(h).Info("projected", "stops", 3)

	output := buf.String()
	if !strings.Contains(output, "theme=dark") || !strings.Contains(output, "paint.stops=3") {
		t.Errorf("unexpected output %q", output)
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	var buf bytes.Buffer
	if isTerminal(&buf) {
		t.Error("bytes.Buffer should not be detected as terminal")
	}
}
