// Package paint projects colour values into render-ready paint.
//
// A Paint is either a solid colour or a linear gradient with an axis angle in
// degrees and stops carrying concrete colours at unit offsets. Theme variables
// are resolved during projection so the result never references the theme.
package paint

import (
	"fmt"
	"strings"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// Kind distinguishes solid from gradient paint.
type Kind uint8

const (
	KindSolid Kind = iota
	KindGradient
)

func (k Kind) String() string {
	if k == KindGradient {
		return "gradient"
	}
	return "solid"
}

// Stop is a resolved gradient stop. Offset is a fraction of the gradient axis;
// values outside [0,1] are kept as given.
type Stop struct {
	Color  core.RGBA8
	Offset float64
}

// Paint is the renderable form of a colour value.
type Paint struct {
	Kind  Kind
	Solid core.RGBA8
	// Angle is the axis direction in degrees, clockwise from "to top", in [0,360).
	Angle float64
	Stops []Stop
}

// Solid returns solid paint.
func Solid(c core.RGBA8) Paint {
	return Paint{Kind: KindSolid, Solid: c}
}

// Linear returns gradient paint. The stops are copied.
func Linear(angle float64, stops []Stop) Paint {
	return Paint{Kind: KindGradient, Angle: angle, Stops: append([]Stop(nil), stops...)}
}

func (p Paint) String() string {
	if p.Kind == KindSolid {
		return "solid(" + p.Solid.Hex() + ")"
	}
	parts := make([]string, 0, len(p.Stops))
	for _, s := range p.Stops {
		parts = append(parts, fmt.Sprintf("%s %.4g", s.Color.Hex(), s.Offset))
	}
	return fmt.Sprintf("gradient(%.4gdeg; %s)", p.Angle, strings.Join(parts, ", "))
}
