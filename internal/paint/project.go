package paint

import (
	"math"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/resolve"
)

// DefaultFontSize is the em/rem size in pixels used for length stops.
const DefaultFontSize = 16

// unsetAngle is the axis used when a gradient has no angle ("to right").
const unsetAngle = 90

// ProjectOption tunes a single projection.
type ProjectOption func(*projectOptions)

type projectOptions struct {
	axisLength float64
	fontSize   float64
}

// WithAxisLength sets the gradient axis length in pixels. Without it, length
// stops are placed as if they had no position.
func WithAxisLength(px float64) ProjectOption {
	return func(o *projectOptions) {
		o.axisLength = px
	}
}

// WithFontSize sets the pixel size of em and rem.
func WithFontSize(px float64) ProjectOption {
	return func(o *projectOptions) {
		if px > 0 {
			o.fontSize = px
		}
	}
}

// Projector converts colour values to paint.
type Projector struct {
	resolver *resolve.Resolver
}

// NewProjector creates a projector. A nil resolver uses resolve.New().
func NewProjector(r *resolve.Resolver) *Projector {
	if r == nil {
		r = resolve.New()
	}
	return &Projector{resolver: r}
}

// Project resolves v against theme and returns paint.
//
// Variables resolve to solid paint (the fallback on a miss). A gradient with a
// single stop becomes solid paint of that stop's colour; a gradient with no
// stops is an EmptyGradient error. Unmapped colours are InvalidColor errors.
func (p *Projector) Project(v core.Value, theme core.ThemeLookup, opts ...ProjectOption) (Paint, error) {
	o := projectOptions{fontSize: DefaultFontSize}
	for _, opt := range opts {
		opt(&o)
	}

	switch v.Variant() {
	case core.VariantVariable:
		name, _ := v.VariableName()
		return Solid(p.resolver.Resolve(name, theme)), nil
	case core.VariantGradient:
		g, _ := v.Gradient()
		return projectGradient(g, o)
	default:
		c, _ := v.Color()
		rgba, err := c.Resolve()
		if err != nil {
			return Paint{}, err
		}
		return Solid(rgba), nil
	}
}

func projectGradient(g core.LinearGradient, o projectOptions) (Paint, error) {
	if len(g.Stops) == 0 {
		return Paint{}, core.ErrEmptyGradient()
	}

	colors := make([]core.RGBA8, len(g.Stops))
	for i, s := range g.Stops {
		c, err := s.Color.Resolve()
		if err != nil {
			return Paint{}, err
		}
		colors[i] = c
	}
	if len(g.Stops) == 1 {
		return Solid(colors[0]), nil
	}

	offsets := Offsets(g.Stops, o.axisLength, o.fontSize)
	stops := make([]Stop, len(colors))
	for i := range colors {
		stops[i] = Stop{Color: colors[i], Offset: offsets[i]}
	}
	return Paint{Kind: KindGradient, Angle: AngleDegrees(g.Angle), Stops: stops}, nil
}

// Offsets places every stop on the unit axis.
//
// Explicit positions are used as given. Unpositioned stops follow CSS: the
// first defaults to 0, the last to 1, and each run of unpositioned interior
// stops is spread evenly between its positioned neighbours.
func Offsets(stops []core.ColorStop, axisLength, fontSize float64) []float64 {
	n := len(stops)
	out := make([]float64, n)
	known := make([]bool, n)
	for i, s := range stops {
		out[i], known[i] = explicitOffset(s.Position, axisLength, fontSize)
	}
	if n == 0 {
		return out
	}
	if !known[0] {
		out[0], known[0] = 0, true
	}
	if n > 1 && !known[n-1] {
		out[n-1], known[n-1] = 1, true
	}

	for i := 1; i < n; {
		if known[i] {
			i++
			continue
		}
		j := i
		for !known[j] {
			j++
		}
		start, end := out[i-1], out[j]
		span := float64(j - i + 1)
		for k := i; k < j; k++ {
			out[k] = start + (end-start)*float64(k-i+1)/span
		}
		i = j
	}
	return out
}

func explicitOffset(p core.StopPosition, axisLength, fontSize float64) (float64, bool) {
	switch p.Kind() {
	case core.PositionPercent:
		return p.Amount() / 100, true
	case core.PositionLength:
		if axisLength <= 0 {
			return 0, false
		}
		px := p.Amount()
		if p.Unit() != core.UnitPx {
			px *= fontSize
		}
		return px / axisLength, true
	}
	return 0, false
}

// AngleDegrees converts a gradient angle to degrees in [0,360), measured
// clockwise from "to top". An unset angle points right (90).
func AngleDegrees(a core.Angle) float64 {
	if m, unit, ok := a.Constant(); ok {
		return normalize(toDegrees(m, unit))
	}
	if d, ok := a.Direction(); ok {
		return DirectionDegrees(d)
	}
	return unsetAngle
}

func toDegrees(m float64, unit core.AngleUnit) float64 {
	switch unit {
	case core.UnitGrad:
		return m * 0.9
	case core.UnitRad:
		return m * 180 / math.Pi
	case core.UnitTurn:
		return m * 360
	default:
		return m
	}
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

var sideDegrees = map[core.Side]float64{
	core.SideTop:    0,
	core.SideRight:  90,
	core.SideBottom: 180,
	core.SideLeft:   270,
}

// DirectionDegrees maps a side or corner to its axis angle. Corners take the
// fixed diagonal (45, 135, 225, 315) regardless of box shape.
func DirectionDegrees(d core.Direction) float64 {
	p := sideDegrees[d.Primary()]
	if !d.Corner() {
		return p
	}
	s := sideDegrees[d.Secondary()]
	// top-left sits between 0 and 360, not 0 and 270
	if (p == 0 && s == 270) || (p == 270 && s == 0) {
		return 315
	}
	return (p + s) / 2
}
