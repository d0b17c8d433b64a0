package config

import (
	"fmt"
	"os"

	"github.com/hugo-lorenzo-mato/swatch/internal/fsutil"
)

// DefaultConfigFile is the project config file name written by `swatch init`.
const DefaultConfigFile = ".swatch.yaml"

// DefaultConfigYAML is the commented starting configuration.
const DefaultConfigYAML = `# swatch configuration
#
# Every key can be overridden with an environment variable:
# SWATCH_<SECTION>_<KEY>, e.g. SWATCH_THEME_PRESET=light.

log:
  level: info     # debug, info, warn, error
  format: auto    # auto, text, json

theme:
  # Built-in theme: dark, light or amoled.
  preset: dark
  # YAML theme file; overrides preset when set.
  file: ""
  # Colour used for variables the theme does not define.
  fallback: transparent
  # Reload the theme file when it changes.
  watch: false

editor:
  # Variable selected when a value switches to a variable reference.
  default_variable: --accent

paint:
  # Gradient axis length in pixels for px/em/rem stops. 0 treats them as
  # unpositioned.
  axis_length: 0
  font_size: 16
  preview_width: 40
  preview_height: 6
  background: "#000000"

store:
  path: .swatch/styles.db
`

// WriteDefault writes DefaultConfigYAML to path. An existing file is kept
// unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking config file: %w", err)
		}
	}
	return fsutil.AtomicWrite(path, []byte(DefaultConfigYAML), 0o600)
}
