// Package resolve turns theme variable names into concrete channel values.
package resolve

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/logging"
)

// Resolver looks variables up in a theme, substituting a fallback on misses.
// A Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	fallback core.RGBA8
	logger   *logging.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFallback sets the colour returned when a variable is missing.
func WithFallback(c core.RGBA8) Option {
	return func(r *Resolver) {
		r.fallback = c
	}
}

// WithLogger sets the logger used to report misses.
func WithLogger(l *logging.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a resolver. The default fallback is transparent black.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		fallback: core.Transparent,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fallback returns the colour substituted for missing variables.
func (r *Resolver) Fallback() core.RGBA8 {
	return r.fallback
}

// Resolve returns the theme colour for name, or the fallback when the theme
// has no such entry. It never fails.
func (r *Resolver) Resolve(name string, theme core.ThemeLookup) core.RGBA8 {
	c, _ := r.Lookup(name, theme)
	return c
}

// Lookup is Resolve that also reports whether the theme had an entry.
func (r *Resolver) Lookup(name string, theme core.ThemeLookup) (core.RGBA8, bool) {
	if theme == nil {
		theme = core.EmptyTheme
	}
	c, ok := theme.Lookup(name)
	if !ok || c == nil {
		r.logger.Debug("theme variable not found, using fallback",
			"variable", name, "fallback", r.fallback.Hex())
		return r.fallback, false
	}
	return FromColor(c), true
}

// FromColor converts any image/color.Color to 8-bit non-premultiplied
// channels, rounding half up.
func FromColor(c color.Color) core.RGBA8 {
	if c8, ok := c.(core.RGBA8); ok {
		return c8
	}
	if n, ok := c.(color.NRGBA); ok {
		return core.RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}
	}

	_, _, _, a := c.RGBA()
	if a == 0 {
		return core.Transparent
	}
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.Clamped().RGB255()
	return core.RGBA8{R: r, G: g, B: b, A: core.Channel8(float64(a) / 0xffff)}
}
