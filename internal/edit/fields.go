package edit

import (
	"strings"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// Edit is a field edit. It returns a new value or an error, never modifying
// its input.
type Edit func(core.Value) (core.Value, error)

// Chain applies edits in order, stopping at the first error.
func Chain(edits ...Edit) Edit {
	return func(v core.Value) (core.Value, error) {
		var err error
		for _, e := range edits {
			if v, err = e(v); err != nil {
				return core.Value{}, err
			}
		}
		return v, nil
	}
}

// SetSimpleColor replaces the colour of a simple value.
func SetSimpleColor(c core.Color) Edit {
	return func(v core.Value) (core.Value, error) {
		if v.Variant() != core.VariantSimple {
			return core.Value{}, core.ErrWrongVariant(core.VariantSimple, v.Variant())
		}
		return core.Simple(c), nil
	}
}

// SetVariableName renames the referenced variable. Surrounding whitespace is
// trimmed and a blank name is rejected.
func SetVariableName(name string) Edit {
	return func(v core.Value) (core.Value, error) {
		if v.Variant() != core.VariantVariable {
			return core.Value{}, core.ErrWrongVariant(core.VariantVariable, v.Variant())
		}
		return core.Variable(strings.TrimSpace(name))
	}
}

// updateGradient applies fn to a private copy of v's gradient.
func updateGradient(v core.Value, fn func(g *core.LinearGradient) error) (core.Value, error) {
	g, ok := v.Gradient()
	if !ok {
		return core.Value{}, core.ErrWrongVariant(core.VariantGradient, v.Variant())
	}
	if err := fn(&g); err != nil {
		return core.Value{}, err
	}
	return core.Gradient(g), nil
}

func gradientEdit(fn func(g *core.LinearGradient) error) Edit {
	return func(v core.Value) (core.Value, error) {
		return updateGradient(v, fn)
	}
}

// SetAngleKind switches how the angle is expressed. Switching to constant
// starts at 0deg, to direction starts at "to right", and unset clears it.
// Selecting the kind the angle already has keeps its value. Stops are never
// touched.
func SetAngleKind(kind core.AngleKind) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		if g.Angle.Kind() == kind {
			return nil
		}
		switch kind {
		case core.AngleConstant:
			g.Angle = core.ConstantAngle(0, core.UnitDeg)
		case core.AngleDirection:
			g.Angle = core.DirectionAngle(core.MustDirection(core.SideRight, core.SideNone))
		default:
			g.Angle = core.Angle{}
		}
		return nil
	})
}

// SetAngleMagnitude sets a constant angle's magnitude, keeping its unit. Any
// other angle becomes a constant in degrees.
func SetAngleMagnitude(m float64) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		unit := core.UnitDeg
		if _, u, ok := g.Angle.Constant(); ok {
			unit = u
		}
		g.Angle = core.ConstantAngle(m, unit)
		return nil
	})
}

// SetAngleUnit sets a constant angle's unit, keeping its magnitude. Any other
// angle becomes a zero constant in that unit.
func SetAngleUnit(unit core.AngleUnit) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		m, _, _ := g.Angle.Constant()
		g.Angle = core.ConstantAngle(m, unit)
		return nil
	})
}

// SetDirection orients the gradient towards a side or corner.
func SetDirection(d core.Direction) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		if _, err := core.NewDirection(d.Primary(), d.Secondary()); err != nil {
			return err
		}
		g.Angle = core.DirectionAngle(d)
		return nil
	})
}

// ClearAngle unsets the angle.
func ClearAngle() Edit {
	return SetAngleKind(core.AngleUnset)
}

// AppendStop adds a stop at the end.
func AppendStop(s core.ColorStop) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		g.Stops = append(g.Stops, s)
		return nil
	})
}

// InsertStop inserts a stop before index i. i may equal the stop count.
func InsertStop(i int, s core.ColorStop) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		if i < 0 || i > len(g.Stops) {
			return core.ErrStopIndex(i, len(g.Stops))
		}
		g.Stops = append(g.Stops[:i], append([]core.ColorStop{s}, g.Stops[i:]...)...)
		return nil
	})
}

// RemoveStop deletes stop i.
func RemoveStop(i int) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		if err := checkIndex(i, g); err != nil {
			return err
		}
		g.Stops = append(g.Stops[:i], g.Stops[i+1:]...)
		return nil
	})
}

// MoveStop moves stop from to index to, shifting the stops in between.
func MoveStop(from, to int) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		if err := checkIndex(from, g); err != nil {
			return err
		}
		if err := checkIndex(to, g); err != nil {
			return err
		}
		s := g.Stops[from]
		g.Stops = append(g.Stops[:from], g.Stops[from+1:]...)
		g.Stops = append(g.Stops[:to], append([]core.ColorStop{s}, g.Stops[to:]...)...)
		return nil
	})
}

// SetStopColor replaces stop i's colour, keeping its position.
func SetStopColor(i int, c core.Color) Edit {
	return updateStop(i, func(s *core.ColorStop) {
		s.Color = c
	})
}

// SetStopPosition replaces stop i's position, keeping its colour.
func SetStopPosition(i int, p core.StopPosition) Edit {
	return updateStop(i, func(s *core.ColorStop) {
		s.Position = p
	})
}

// SetStopAmount changes stop i's position amount, keeping the position kind
// and unit. An unpositioned stop becomes a percentage.
func SetStopAmount(i int, amount float64) Edit {
	return updateStop(i, func(s *core.ColorStop) {
		s.Position = s.Position.WithAmount(amount)
	})
}

// SetStopPositionKind switches how stop i is positioned. Percent starts at
// 0%, length at 0px, and none clears the position. Selecting the current kind
// keeps the position.
func SetStopPositionKind(i int, kind core.PositionKind) Edit {
	return updateStop(i, func(s *core.ColorStop) {
		if s.Position.Kind() == kind {
			return
		}
		switch kind {
		case core.PositionPercent:
			s.Position = core.Percent(0)
		case core.PositionLength:
			s.Position = core.Length(0, core.UnitPx)
		default:
			s.Position = core.StopPosition{}
		}
	})
}

func updateStop(i int, fn func(s *core.ColorStop)) Edit {
	return gradientEdit(func(g *core.LinearGradient) error {
		if err := checkIndex(i, g); err != nil {
			return err
		}
		fn(&g.Stops[i])
		return nil
	})
}

func checkIndex(i int, g *core.LinearGradient) error {
	if i < 0 || i >= len(g.Stops) {
		return core.ErrStopIndex(i, len(g.Stops))
	}
	return nil
}
