package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// testdataDir is resolved before tests change directory.
var testdataDir, _ = filepath.Abs("testdata")

// cliEnv is an isolated home and working directory with its own config file.
type cliEnv struct {
	dir    string
	config string
	stdin  string
}

// newCLIEnv moves the test into a temp directory and writes a config that
// keeps logs quiet and the store inside it.
func newCLIEnv(t *testing.T, extraYAML string) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg := "log:\n  level: error\n  format: text\nstore:\n  path: " +
		filepath.Join(dir, "styles.db") + "\n" + extraYAML
	path := filepath.Join(dir, "swatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	return &cliEnv{dir: dir, config: path}
}

// run executes the root command with args and returns captured output.
func (e *cliEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(e.stdin))
	rootCmd.SetArgs(append([]string{"--config", e.config}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mustRun fails the test when the command errors.
func (e *cliEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := e.run(t, args...)
	require.NoError(t, err, "swatch %s\nstderr: %s", strings.Join(args, " "), stderr)
	return out
}

// resetFlags restores every flag in the command tree to its default so state
// from one Execute does not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
