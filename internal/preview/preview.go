// Package preview paints projected colour values into terminal cells.
package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/paint"
)

// DefaultCellAspect is the height of a terminal cell relative to its width.
const DefaultCellAspect = 2.0

// Option configures rendering.
type Option func(*options)

type options struct {
	background core.RGBA8
	aspect     float64
}

// WithBackground sets the colour translucent paint is composited over.
func WithBackground(c core.RGBA8) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithCellAspect sets the cell height to width ratio.
func WithCellAspect(aspect float64) Option {
	return func(o *options) {
		if aspect > 0 {
			o.aspect = aspect
		}
	}
}

// Render paints p into a width by height block of cells.
func Render(p paint.Paint, width, height int, opts ...Option) string {
	o := options{background: core.Black, aspect: DefaultCellAspect}
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 {
		return ""
	}

	var b strings.Builder
	for y := range height {
		if y > 0 {
			b.WriteByte('\n')
		}
		// consecutive cells of one colour share a style run
		runStart, runColor := 0, core.RGBA8{}
		for x := range width {
			c := Composite(Sample(p, x, y, width, height, o.aspect), o.background)
			if x == 0 {
				runColor = c
				continue
			}
			if c != runColor {
				b.WriteString(cells(runColor, x-runStart))
				runStart, runColor = x, c
			}
		}
		b.WriteString(cells(runColor, width-runStart))
	}
	return b.String()
}

func cells(c core.RGBA8, n int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex()[:7])).
		Render(strings.Repeat(" ", n))
}

// Sample returns the paint colour at the centre of cell (x, y) in a
// width by height grid whose cells are aspect times taller than wide.
func Sample(p paint.Paint, x, y, width, height int, aspect float64) core.RGBA8 {
	if p.Kind == paint.KindSolid || len(p.Stops) == 0 {
		return p.Solid
	}
	w := float64(width)
	h := float64(height) * aspect
	px := float64(x) + 0.5
	py := (float64(y) + 0.5) * aspect
	return ColorAt(p.Stops, AxisOffset(p.Angle, px, py, w, h))
}

// AxisOffset projects point (px, py) of a w by h box onto the gradient line
// for angle degrees, returning 0 at the line's start and 1 at its end.
func AxisOffset(angle, px, py, w, h float64) float64 {
	rad := angle * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	length := math.Abs(w*dx) + math.Abs(h*dy)
	if length == 0 {
		return 0
	}
	return ((px-w/2)*dx+(py-h/2)*dy)/length + 0.5
}

// ColorAt interpolates the stop colours at offset t. Stops positioned before
// an earlier stop are treated as sitting on it.
func ColorAt(stops []paint.Stop, t float64) core.RGBA8 {
	if len(stops) == 0 {
		return core.Transparent
	}
	offsets := make([]float64, len(stops))
	for i, s := range stops {
		offsets[i] = s.Offset
		if i > 0 && offsets[i] < offsets[i-1] {
			offsets[i] = offsets[i-1]
		}
	}

	if t <= offsets[0] {
		return stops[0].Color
	}
	last := len(stops) - 1
	if t >= offsets[last] {
		return stops[last].Color
	}
	for i := 0; i < last; i++ {
		a, b := offsets[i], offsets[i+1]
		if t > b {
			continue
		}
		if b == a {
			return stops[i+1].Color
		}
		return Blend(stops[i].Color, stops[i+1].Color, (t-a)/(b-a))
	}
	return stops[last].Color
}

// Blend mixes two colours in RGB space, interpolating alpha linearly.
func Blend(a, b core.RGBA8, t float64) core.RGBA8 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A)/255 + (float64(b.A)/255-float64(a.A)/255)*t
	return core.RGBA8{R: r, G: g, B: bl, A: core.Channel8(alpha)}
}

// Composite lays c over an opaque background.
func Composite(c, background core.RGBA8) core.RGBA8 {
	if c.A == 255 {
		return c
	}
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	bg := colorful.Color{R: float64(background.R) / 255, G: float64(background.G) / 255, B: float64(background.B) / 255}
	r, g, b := bg.BlendRgb(fg, float64(c.A)/255).Clamped().RGB255()
	return core.RGBA8{R: r, G: g, B: b, A: 255}
}
