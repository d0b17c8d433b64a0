// Package theme provides named colour tables that variable references
// resolve against: built-in presets, YAML theme files and a hot-swappable
// live theme.
package theme

import (
	"image/color"
	"maps"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// Theme maps variable names such as "--accent" to colours. A Theme is
// immutable once built and safe for concurrent readers.
type Theme struct {
	Name        string
	Description string
	vars        map[string]core.RGBA8
}

// New builds a theme. The variable map is copied and names without the
// leading "--" are prefixed.
func New(name, description string, vars map[string]core.RGBA8) *Theme {
	t := &Theme{Name: name, Description: description, vars: make(map[string]core.RGBA8, len(vars))}
	for k, v := range vars {
		t.vars[NormalizeName(k)] = v
	}
	return t
}

// NormalizeName trims whitespace and adds the "--" prefix when missing.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}

// Lookup implements core.ThemeLookup.
func (t *Theme) Lookup(name string) (color.Color, bool) {
	c, ok := t.Get(name)
	if !ok {
		return nil, false
	}
	return c, true
}

// Get returns the colour stored under name.
func (t *Theme) Get(name string) (core.RGBA8, bool) {
	if t == nil {
		return core.RGBA8{}, false
	}
	c, ok := t.vars[name]
	return c, ok
}

// Len returns the number of variables.
func (t *Theme) Len() int {
	if t == nil {
		return 0
	}
	return len(t.vars)
}

// Names returns the variable names in sorted order.
func (t *Theme) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.vars))
}

// Variables returns a copy of the variable table.
func (t *Theme) Variables() map[string]core.RGBA8 {
	if t == nil {
		return map[string]core.RGBA8{}
	}
	return maps.Clone(t.vars)
}

// With returns a new theme named name that layers overrides on top of t.
func (t *Theme) With(name string, overrides map[string]core.RGBA8) *Theme {
	vars := t.Variables()
	for k, v := range overrides {
		vars[NormalizeName(k)] = v
	}
	desc := ""
	if t != nil {
		desc = t.Description
	}
	return New(name, desc, vars)
}

// Suggest returns up to limit variable names that fuzzily match name, best
// match first. A limit of zero or less returns every match.
func (t *Theme) Suggest(name string, limit int) []string {
	pattern := strings.TrimPrefix(strings.TrimSpace(name), "--")
	if pattern == "" {
		return nil
	}
	matches := fuzzy.Find(pattern, t.Names())
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		if limit > 0 && len(result) == limit {
			break
		}
		result = append(result, m.Str)
	}
	return result
}
