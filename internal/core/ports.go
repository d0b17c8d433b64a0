package core

import "image/color"

// ThemeLookup is the read-only theme capability the resolver consumes.
// Implementations must be safe for concurrent readers.
type ThemeLookup interface {
	Lookup(name string) (color.Color, bool)
}

// ThemeFunc adapts a function to ThemeLookup.
type ThemeFunc func(name string) (color.Color, bool)

// Lookup implements ThemeLookup.
func (f ThemeFunc) Lookup(name string) (color.Color, bool) {
	return f(name)
}

// EmptyTheme resolves nothing.
var EmptyTheme ThemeLookup = ThemeFunc(func(string) (color.Color, bool) { return nil, false })
