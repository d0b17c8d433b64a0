package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// Serialize returns the canonical text form of v.
//
// Simple colours become lowercase hex (#rrggbb, or #rrggbbaa when translucent),
// unmapped tokens are written back verbatim, and references become var(name).
// Gradients produce linear-gradient(...) text for export; Parse does not read
// it back, gradients persist as records.
func Serialize(v core.Value) string {
	switch v.Variant() {
	case core.VariantSimple:
		c, _ := v.Color()
		return c.String()
	case core.VariantVariable:
		name, _ := v.VariableName()
		return "var(" + name + ")"
	case core.VariantGradient:
		g, _ := v.Gradient()
		return formatGradient(g)
	}
	return ""
}

func formatGradient(g core.LinearGradient) string {
	parts := make([]string, 0, len(g.Stops)+1)
	if g.Angle.IsSet() {
		parts = append(parts, FormatAngle(g.Angle))
	}
	for _, s := range g.Stops {
		parts = append(parts, FormatStop(s))
	}
	return "linear-gradient(" + strings.Join(parts, ", ") + ")"
}

// FormatStop renders a stop as "<colour> [<position>]".
func FormatStop(s core.ColorStop) string {
	if !s.Position.IsSet() {
		return s.Color.String()
	}
	return s.Color.String() + " " + FormatPosition(s.Position)
}

// FormatAngle renders an angle: "45deg", "to top right", or "" when unset.
func FormatAngle(a core.Angle) string {
	if m, unit, ok := a.Constant(); ok {
		return FormatNumber(m) + unit.String()
	}
	if d, ok := a.Direction(); ok {
		return d.String()
	}
	return ""
}

// FormatPosition renders a stop position: "50%", "12.5px", or "" when unset.
func FormatPosition(p core.StopPosition) string {
	switch p.Kind() {
	case core.PositionPercent:
		return FormatPercent(p.Amount()) + "%"
	case core.PositionLength:
		return FormatNumber(p.Amount()) + p.Unit().String()
	}
	return ""
}

// FormatNumber prints at most two decimals with trailing zeros trimmed.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatPercent prints integral values as integers and everything else with
// two decimals.
func FormatPercent(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
