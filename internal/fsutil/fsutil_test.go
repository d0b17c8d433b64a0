package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileScoped_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(p, []byte("hello"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	b, err := ReadFileScoped(p)
	if err != nil {
		t.Fatalf("ReadFileScoped error: %v", err)
	}
	if string(b) != "hello" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}

func TestReadFileScoped_RejectsInvalidPath(t *testing.T) {
	for _, p := range []string{"", ".", string(filepath.Separator)} {
		if _, err := ReadFileScoped(p); err == nil {
			t.Fatalf("expected error for %q", p)
		}
	}
}


func TestReadFileScoped_MissingFile(t *testing.T) {
	if _, err := ReadFileScoped(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAtomicWrite_CreatesParents(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "dir", "styles.yaml")
	if err := AtomicWrite(p, []byte("styles: []\n"), 0o600); err != nil {
		t.Fatalf("AtomicWrite error: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "styles: []\n" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}

func TestAtomicWrite_ReplacesAndKeepsMode(t *testing.T) {
	p := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(p, []byte("old"), 0o640); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := AtomicWrite(p, []byte("new"), 0o600); err != nil {
		t.Fatalf("AtomicWrite error: %v", err)
	}

	b, _ := os.ReadFile(p)
	if string(b) != "new" {
		t.Fatalf("content = %q, want new", string(b))
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("mode = %v, want 0640", info.Mode().Perm())
	}
	entries, _ := os.ReadDir(filepath.Dir(p))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}
