package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var update = flag.Bool("update", false, "update golden files")

// Golden compares output against files under baseDir.
type Golden struct {
	t       *testing.T
	baseDir string
}

// NewGolden creates a golden file helper.
func NewGolden(t *testing.T, baseDir string) *Golden {
	return &Golden{t: t, baseDir: baseDir}
}

// AssertString compares actual against <name>.golden, rewriting the file
// when the test binary runs with -update.
func (g *Golden) AssertString(name, actual string) {
	g.t.Helper()
	path := filepath.Join(g.baseDir, name+".golden")

	if *update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			g.t.Fatalf("creating golden directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			g.t.Fatalf("writing golden file: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		g.t.Fatalf("reading golden file %s: %v", path, err)
	}
	if Normalize(actual) != Normalize(string(expected)) {
		g.t.Errorf("output mismatch for %s:\n--- expected ---\n%s\n--- actual ---\n%s", name, expected, actual)
	}
}

// Normalize unifies line endings and trims trailing whitespace per line.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
