package theme

import (
	"slices"
	"strings"

	"github.com/hugo-lorenzo-mato/swatch/internal/codec"
	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// DefaultPreset is the preset used when nothing else is configured.
const DefaultPreset = "dark"

var darkVars = map[string]string{
	"--accent":               "#fd6671",
	"--background":           "#191919",
	"--foreground":           "#f6f6f6",
	"--block":                "#2d2d2d",
	"--message-box":          "#363636",
	"--mention":              "rgba(251, 255, 0, 0.06)",
	"--success":              "#65e572",
	"--warning":              "#faa352",
	"--error":                "#ed4245",
	"--hover":                "rgba(0, 0, 0, 0.1)",
	"--tooltip":              "#000000",
	"--scrollbar-thumb":      "#ca525a",
	"--scrollbar-track":      "transparent",
	"--primary-background":   "#242424",
	"--primary-header":       "#363636",
	"--secondary-background": "#1e1e1e",
	"--secondary-foreground": "#c8c8c8",
	"--secondary-header":     "#2d2d2d",
	"--tertiary-background":  "#4d4d4d",
	"--tertiary-foreground":  "#848484",
	"--status-online":        "#3abf7e",
	"--status-away":          "#f39f00",
	"--status-busy":          "#f84848",
	"--status-invisible":     "#a5a5a5",
}

var lightOverrides = map[string]string{
	"--accent":               "#fd6671",
	"--background":           "#f6f6f6",
	"--foreground":           "#000000",
	"--block":                "#d7d7d7",
	"--message-box":          "#f1f1f1",
	"--mention":              "rgba(251, 255, 0, 0.4)",
	"--hover":                "rgba(0, 0, 0, 0.2)",
	"--tooltip":              "#ffffff",
	"--scrollbar-thumb":      "#ff5c65",
	"--primary-background":   "#ffffff",
	"--primary-header":       "#f1f1f1",
	"--secondary-background": "#f1f1f1",
	"--secondary-foreground": "#1f1f1f",
	"--secondary-header":     "#f1f1f1",
	"--tertiary-background":  "#4d4d4d",
	"--tertiary-foreground":  "#646464",
}

var amoledOverrides = map[string]string{
	"--background":           "#000000",
	"--block":                "#1d1d1d",
	"--message-box":          "#000000",
	"--primary-background":   "#000000",
	"--primary-header":       "#000000",
	"--secondary-background": "#0c0c0c",
	"--secondary-header":     "#000000",
	"--tertiary-background":  "#1a1a1a",
}

var presets = buildPresets()

func buildPresets() map[string]*Theme {
	dark := New("dark", "Default dark theme", mustColors(darkVars))
	light := dark.With("light", mustColors(lightOverrides))
	light.Description = "Light theme"
	amoled := dark.With("amoled", mustColors(amoledOverrides))
	amoled.Description = "Pure black theme for OLED screens"
	return map[string]*Theme{
		dark.Name:   dark,
		light.Name:  light,
		amoled.Name: amoled,
	}
}

func mustColors(src map[string]string) map[string]core.RGBA8 {
	out := make(map[string]core.RGBA8, len(src))
	for k, v := range src {
		out[k] = codec.MustParseColor(v).RGBA
	}
	return out
}

// Preset returns a built-in theme by name (case-insensitive).
func Preset(name string) (*Theme, error) {
	t, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, core.ErrNotFound(core.CodeThemeNotFound, "theme", name)
	}
	return t, nil
}

// PresetNames lists the built-in themes in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
