package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hugo-lorenzo-mato/swatch/internal/testutil"
)

func TestThemeCommand_List(t *testing.T) {
	env := newCLIEnv(t, "")

	out := env.mustRun(t, "theme", "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "amoled"))
	assert.True(t, strings.HasPrefix(lines[1], "dark"))
	assert.True(t, strings.HasPrefix(lines[2], "light"))
}

func TestThemeCommand_ShowPreset(t *testing.T) {
	env := newCLIEnv(t, "")

	out := env.mustRun(t, "theme", "show", "light")
	testutil.NewGolden(t, testdataDir).AssertString("theme_show_light", out)
}

func TestThemeCommand_ShowActive(t *testing.T) {
	env := newCLIEnv(t, "theme:\n  preset: amoled\n")

	out := env.mustRun(t, "theme", "show")
	assert.True(t, strings.HasPrefix(out, "# amoled\n"))
	assert.Contains(t, out, "--background             #000000")
}

func TestThemeCommand_ExportAndLoad(t *testing.T) {
	env := newCLIEnv(t, "")
	path := filepath.Join(env.dir, "mine.yaml")

	assert.Contains(t, env.mustRun(t, "theme", "export", "dark", path), "wrote dark theme")
	_, err := os.Stat(path)
	require.NoError(t, err)

	// a custom theme extending dark with one override
	custom := filepath.Join(env.dir, "custom.yaml")
	writeFile(t, custom, "name: custom\nextends: dark\nvariables:\n  --accent: \"#00ff00\"\n")

	out := env.mustRun(t, "--theme-file", custom, "resolve", "accent", "background")
	assert.Contains(t, out, "#00ff00")
	assert.Contains(t, out, "#191919")

	out = env.mustRun(t, "--theme-file", path, "theme", "show")
	assert.True(t, strings.HasPrefix(out, "# dark\n"))
}

func TestThemeCommand_Errors(t *testing.T) {
	env := newCLIEnv(t, "")

	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"theme", "show", "sepia"}},
		{"export unknown", []string{"theme", "export", "sepia", "x.yaml"}},
		{"missing theme file", []string{"--theme-file", "nope.yaml", "theme", "show"}},
		{"watch without file", []string{"theme", "watch"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := env.run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
