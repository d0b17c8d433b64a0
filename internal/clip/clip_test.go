package clip

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func fail(string) error { return errors.New("unavailable") }
func ok(string) error   { return nil }

func TestCopier_NativeFirst(t *testing.T) {
	c := &Copier{
		native: ok,
		osc52: func(string) error {
			t.Fatal("osc52 should not be called when native succeeds")
			return nil
		},
	}
	got, err := c.WriteAll("#ff0000")
	if err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}
	if got.Method != MethodNative || got.FilePath != "" {
		t.Fatalf("got %+v", got)
	}
}

func TestCopier_OSC52Fallback(t *testing.T) {
	c := &Copier{native: fail, osc52: ok}
	got, err := c.WriteAll("#ff0000")
	if err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}
	if got.Method != MethodOSC52 {
		t.Fatalf("Method=%q, want osc52", got.Method)
	}
}

func TestCopier_FileFallback(t *testing.T) {
	c := &Copier{native: fail, osc52: fail, tempDir: t.TempDir()}
	got, err := c.WriteAll("var(--accent)")
	if err != nil {
		t.Fatalf("WriteAll error: %v", err)
	}
	if got.Method != MethodFile {
		t.Fatalf("Method=%q, want file", got.Method)
	}
	b, err := os.ReadFile(got.FilePath)
	if err != nil {
		t.Fatalf("read temp file: %v", err)
	}
	if string(b) != "var(--accent)" {
		t.Fatalf("file content = %q", string(b))
	}
	if !strings.Contains(got.String(), got.FilePath) {
		t.Fatalf("String() = %q should mention the file", got.String())
	}
}

func TestCopier_FileFallbackError(t *testing.T) {
	c := &Copier{native: fail, osc52: fail, tempDir: "/nonexistent/swatch/dir"}
	if _, err := c.WriteAll("x"); err == nil {
		t.Fatal("expected error when the temp dir is unusable")
	}
}

func TestWriteSequence(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("STY", "")

	var buf bytes.Buffer
	if err := writeSequence(&buf, "#00ff00"); err != nil {
		t.Fatalf("writeSequence error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1b]52;c;") {
		t.Fatalf("unexpected sequence %q", buf.String())
	}

	if err := writeSequence(&buf, strings.Repeat("a", osc52LimitBytes+1)); err == nil {
		t.Fatal("expected error for oversized payload")
	}
}

func TestWriteOSC52_RejectsNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := writeOSC52(f, "x"); err == nil {
		t.Fatal("expected error for a regular file")
	}
	if err := writeOSC52(f, ""); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestResult_String(t *testing.T) {
	if (Result{Method: MethodNative}).String() != "copied to clipboard" {
		t.Error("native description mismatch")
	}
	if (Result{}).String() != "not copied" {
		t.Error("zero result description mismatch")
	}
}
