// Package clip copies serialized colours to the clipboard.
package clip

import (
	"errors"
	"fmt"
	"io"
	"os"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

// Method is how the text was made available.
type Method string

const (
	MethodNative Method = "native" // OS clipboard
	MethodOSC52  Method = "osc52"  // terminal clipboard escape sequence
	MethodFile   Method = "file"   // temp file, clipboard unreachable
)

// Result reports where the text went.
type Result struct {
	Method   Method
	FilePath string // only set for MethodFile
}

// String describes the result for a status line.
func (r Result) String() string {
	switch r.Method {
	case MethodNative:
		return "copied to clipboard"
	case MethodOSC52:
		return "copied to clipboard (OSC52)"
	case MethodFile:
		return "clipboard unavailable, saved to " + r.FilePath
	}
	return "not copied"
}

// Copier tries each clipboard mechanism in turn.
type Copier struct {
	native  func(string) error
	osc52   func(string) error
	tempDir string
}

// NewCopier returns a copier using the OS clipboard, then OSC52 on the
// terminal attached to stderr, then a temp file.
func NewCopier() *Copier {
	return &Copier{
		native: atotto.WriteAll,
		osc52:  func(text string) error { return writeOSC52(os.Stderr, text) },
	}
}

// WriteAll copies text with a default Copier.
func WriteAll(text string) (Result, error) {
	return NewCopier().WriteAll(text)
}

// WriteAll copies text using the first mechanism that works.
func (c *Copier) WriteAll(text string) (Result, error) {
	if c.native != nil && c.native(text) == nil {
		return Result{Method: MethodNative}, nil
	}
	if c.osc52 != nil && c.osc52(text) == nil {
		return Result{Method: MethodOSC52}, nil
	}
	path, err := c.writeTempFile(text)
	if err != nil {
		return Result{}, fmt.Errorf("copy fallback: %w", err)
	}
	return Result{Method: MethodFile, FilePath: path}, nil
}

// Terminals drop oversized OSC52 payloads; colour text is far below this.
const osc52LimitBytes = 100_000

func writeOSC52(out *os.File, text string) error {
	if text == "" {
		return errors.New("empty clipboard text")
	}
	if !term.IsTerminal(int(out.Fd())) {
		return errors.New("output is not a terminal")
	}
	return writeSequence(out, text)
}

func writeSequence(w io.Writer, text string) error {
	if len(text) > osc52LimitBytes {
		return fmt.Errorf("text too large for OSC52 (%d bytes > %d)", len(text), osc52LimitBytes)
	}
	seq := osc52.New(text).Limit(osc52LimitBytes)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if os.Getenv("STY") != "" {
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(w)
	return err
}

func (c *Copier) writeTempFile(text string) (string, error) {
	f, err := os.CreateTemp(c.tempDir, "swatch-clipboard-*.txt")
	if err != nil {
		return "", err
	}
	path := f.Name()
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
