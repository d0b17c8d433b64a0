// Package core defines the colour value model shared by every swatch component.
package core

import (
	"fmt"
	"math"
)

// RGBA8 is a non-premultiplied colour with four 8-bit channels.
type RGBA8 struct {
	R, G, B, A uint8
}

// Common colours.
var (
	Transparent = RGBA8{}
	Black       = RGBA8{A: 255}
	White       = RGBA8{R: 255, G: 255, B: 255, A: 255}
)

// RGBA implements image/color.Color. The returned channels are alpha-premultiplied.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R)
	r |= r << 8
	r = r * a / 0xffff
	g = uint32(c.G)
	g |= g << 8
	g = g * a / 0xffff
	b = uint32(c.B)
	b |= b << 8
	b = b * a / 0xffff
	return r, g, b, a
}

// Hex returns the lowercase #rrggbb form, or #rrggbbaa when not fully opaque.
func (c RGBA8) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Opaque reports whether the alpha channel is 255.
func (c RGBA8) Opaque() bool {
	return c.A == 255
}

// Channel8 converts a unit-interval float to an 8-bit channel, rounding half up.
// Values outside [0,1] are clamped.
func Channel8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Floor(v*255 + 0.5))
}

// Color is a concrete colour token as stored in a simple value or a gradient stop.
//
// Text that could not be mapped to channel values is kept verbatim in Raw with
// Unmapped set, so interactive typing never fails. Such a colour only errors
// when something needs its channels (see Resolve).
type Color struct {
	RGBA     RGBA8
	Raw      string
	Unmapped bool
}

// NewColor wraps channel values.
func NewColor(c RGBA8) Color {
	return Color{RGBA: c}
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{RGBA: RGBA8{R: r, G: g, B: b, A: 255}}
}

// UnmappedColor returns a colour that holds text with no known channel values.
func UnmappedColor(raw string) Color {
	return Color{Raw: raw, Unmapped: true}
}

// Resolve returns the channel values or an InvalidColor error.
func (c Color) Resolve() (RGBA8, error) {
	if c.Unmapped {
		return RGBA8{}, ErrInvalidColorText(c.Raw)
	}
	return c.RGBA, nil
}

// String returns the hex form, or the raw token for unmapped colours.
func (c Color) String() string {
	if c.Unmapped {
		return c.Raw
	}
	return c.RGBA.Hex()
}
