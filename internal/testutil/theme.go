package testutil

import (
	"image/color"
	"sync"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// StubTheme is an in-memory core.ThemeLookup that records every lookup.
type StubTheme struct {
	mu      sync.Mutex
	vars    map[string]core.RGBA8
	lookups []string
}

// NewStubTheme creates a stub with the given variables.
func NewStubTheme(vars map[string]core.RGBA8) *StubTheme {
	s := &StubTheme{vars: make(map[string]core.RGBA8, len(vars))}
	for k, v := range vars {
		s.vars[k] = v
	}
	return s
}

// Lookup implements core.ThemeLookup.
func (s *StubTheme) Lookup(name string) (color.Color, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups = append(s.lookups, name)
	c, ok := s.vars[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// Lookups returns the names looked up so far, in order.
func (s *StubTheme) Lookups() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lookups...)
}
