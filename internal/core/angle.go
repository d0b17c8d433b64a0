package core

import "fmt"

// AngleUnit is the unit of a constant gradient angle.
type AngleUnit uint8

const (
	UnitDeg AngleUnit = iota
	UnitGrad
	UnitRad
	UnitTurn
)

// AngleUnits lists every unit in display order.
var AngleUnits = []AngleUnit{UnitDeg, UnitGrad, UnitRad, UnitTurn}

func (u AngleUnit) String() string {
	switch u {
	case UnitDeg:
		return "deg"
	case UnitGrad:
		return "grad"
	case UnitRad:
		return "rad"
	case UnitTurn:
		return "turn"
	default:
		return fmt.Sprintf("AngleUnit(%d)", uint8(u))
	}
}

// ParseAngleUnit maps a unit suffix to an AngleUnit.
func ParseAngleUnit(s string) (AngleUnit, error) {
	for _, u := range AngleUnits {
		if u.String() == s {
			return u, nil
		}
	}
	return 0, ErrInvalidUnit(s)
}

// Side is one edge of the painted box.
type Side uint8

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return ""
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// ParseSide maps a keyword to a Side.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "top":
		return SideTop, true
	case "bottom":
		return SideBottom, true
	case "left":
		return SideLeft, true
	case "right":
		return SideRight, true
	}
	return SideNone, false
}

func (s Side) vertical() bool {
	return s == SideTop || s == SideBottom
}

func (s Side) horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Direction is a side or corner keyword pair such as "to top right".
// Corners are stored vertical side first, so "right top" and "top right" are equal.
type Direction struct {
	primary   Side
	secondary Side
}

// NewDirection validates a side pair. secondary may be SideNone; otherwise it
// must be orthogonal to primary.
func NewDirection(primary, secondary Side) (Direction, error) {
	if primary == SideNone || primary > SideRight || secondary > SideRight {
		return Direction{}, ErrInvalidDirectionPair(primary, secondary)
	}
	if secondary == SideNone {
		return Direction{primary: primary}, nil
	}
	switch {
	case primary.vertical() && secondary.horizontal():
		return Direction{primary: primary, secondary: secondary}, nil
	case primary.horizontal() && secondary.vertical():
		return Direction{primary: secondary, secondary: primary}, nil
	default:
		return Direction{}, ErrInvalidDirectionPair(primary, secondary)
	}
}

// MustDirection is NewDirection for known-good literals.
func MustDirection(primary, secondary Side) Direction {
	d, err := NewDirection(primary, secondary)
	if err != nil {
		panic(err)
	}
	return d
}

// Primary returns the first side.
func (d Direction) Primary() Side { return d.primary }

// Secondary returns the second side or SideNone.
func (d Direction) Secondary() Side { return d.secondary }

// Corner reports whether the direction points at a corner.
func (d Direction) Corner() bool { return d.secondary != SideNone }

func (d Direction) String() string {
	if d.secondary == SideNone {
		return "to " + d.primary.String()
	}
	return "to " + d.primary.String() + " " + d.secondary.String()
}

// Directions lists the eight valid directions clockwise from top.
func Directions() []Direction {
	return []Direction{
		{primary: SideTop},
		{primary: SideTop, secondary: SideRight},
		{primary: SideRight},
		{primary: SideBottom, secondary: SideRight},
		{primary: SideBottom},
		{primary: SideBottom, secondary: SideLeft},
		{primary: SideLeft},
		{primary: SideTop, secondary: SideLeft},
	}
}

// AngleKind discriminates Angle.
type AngleKind uint8

const (
	AngleUnset AngleKind = iota
	AngleConstant
	AngleDirection
)

func (k AngleKind) String() string {
	switch k {
	case AngleUnset:
		return "unset"
	case AngleConstant:
		return "constant"
	case AngleDirection:
		return "direction"
	default:
		return fmt.Sprintf("AngleKind(%d)", uint8(k))
	}
}

// Angle orients a linear gradient. The zero value is unset, which is distinct
// from an explicit 90deg even though both paint the same way.
type Angle struct {
	kind      AngleKind
	magnitude float64
	unit      AngleUnit
	direction Direction
}

// ConstantAngle returns a numeric angle.
func ConstantAngle(magnitude float64, unit AngleUnit) Angle {
	return Angle{kind: AngleConstant, magnitude: magnitude, unit: unit}
}

// DirectionAngle returns a keyword angle.
func DirectionAngle(d Direction) Angle {
	return Angle{kind: AngleDirection, direction: d}
}

// Kind returns the angle variant.
func (a Angle) Kind() AngleKind { return a.kind }

// IsSet reports whether the user committed an angle.
func (a Angle) IsSet() bool { return a.kind != AngleUnset }

// Constant returns magnitude and unit when the angle is numeric.
func (a Angle) Constant() (float64, AngleUnit, bool) {
	if a.kind != AngleConstant {
		return 0, UnitDeg, false
	}
	return a.magnitude, a.unit, true
}

// Direction returns the keyword direction when the angle is directional.
func (a Angle) Direction() (Direction, bool) {
	if a.kind != AngleDirection {
		return Direction{}, false
	}
	return a.direction, true
}
