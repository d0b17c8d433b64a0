package core

import "fmt"

// LengthUnit is the unit of an absolute stop position.
type LengthUnit uint8

const (
	UnitPx LengthUnit = iota
	UnitEm
	UnitRem
)

// LengthUnits lists every length unit.
var LengthUnits = []LengthUnit{UnitPx, UnitEm, UnitRem}

func (u LengthUnit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitEm:
		return "em"
	case UnitRem:
		return "rem"
	default:
		return fmt.Sprintf("LengthUnit(%d)", uint8(u))
	}
}

// ParseLengthUnit maps a unit suffix to a LengthUnit.
func ParseLengthUnit(s string) (LengthUnit, error) {
	for _, u := range LengthUnits {
		if u.String() == s {
			return u, nil
		}
	}
	return 0, ErrInvalidUnit(s)
}

// PositionKind discriminates StopPosition.
type PositionKind uint8

const (
	PositionNone PositionKind = iota
	PositionPercent
	PositionLength
)

func (k PositionKind) String() string {
	switch k {
	case PositionNone:
		return "none"
	case PositionPercent:
		return "percent"
	case PositionLength:
		return "length"
	default:
		return fmt.Sprintf("PositionKind(%d)", uint8(k))
	}
}

// StopPosition places a stop along the gradient axis. The zero value means
// "evenly distributed" and is left to the projector.
type StopPosition struct {
	kind   PositionKind
	amount float64
	unit   LengthUnit
}

// Percent returns a percentage position. The amount is not clamped.
func Percent(p float64) StopPosition {
	return StopPosition{kind: PositionPercent, amount: p}
}

// Length returns an absolute position.
func Length(amount float64, unit LengthUnit) StopPosition {
	return StopPosition{kind: PositionLength, amount: amount, unit: unit}
}

// Kind returns the position variant.
func (p StopPosition) Kind() PositionKind { return p.kind }

// IsSet reports whether an explicit position exists.
func (p StopPosition) IsSet() bool { return p.kind != PositionNone }

// Amount returns the numeric part of the position (0 when unset).
func (p StopPosition) Amount() float64 { return p.amount }

// Unit returns the length unit; meaningful only for PositionLength.
func (p StopPosition) Unit() LengthUnit { return p.unit }

// WithAmount keeps the kind and unit and replaces the amount.
// An unset position becomes a percentage.
func (p StopPosition) WithAmount(amount float64) StopPosition {
	if p.kind == PositionNone {
		return Percent(amount)
	}
	p.amount = amount
	return p
}

// ColorStop is a colour placed along a gradient axis.
type ColorStop struct {
	Color    Color
	Position StopPosition
}

// Stop builds an unpositioned stop.
func Stop(c Color) ColorStop {
	return ColorStop{Color: c}
}
