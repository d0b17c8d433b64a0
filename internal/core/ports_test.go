package core

import (
	"image/color"
	"testing"
)

func TestThemeFunc_Lookup(t *testing.T) {
	var theme ThemeLookup = ThemeFunc(func(name string) (color.Color, bool) {
		if name == "--accent" {
			return White, true
		}
		return nil, false
	})

	c, ok := theme.Lookup("--accent")
	if !ok || c != color.Color(White) {
		t.Errorf("Lookup(--accent) = %v, %v", c, ok)
	}
	if _, ok := theme.Lookup("--missing"); ok {
		t.Error("Lookup(--missing) should miss")
	}
}

func TestEmptyTheme(t *testing.T) {
	for _, name := range []string{"", "--accent", "--background"} {
		if c, ok := EmptyTheme.Lookup(name); ok || c != nil {
			t.Errorf("EmptyTheme.Lookup(%q) = %v, %v", name, c, ok)
		}
	}
}
