package core

import (
	"fmt"
	"slices"
	"strings"
)

// Variant identifies which arm of Value is active.
type Variant uint8

const (
	VariantSimple Variant = iota
	VariantGradient
	VariantVariable
)

// Variants lists the variants in picker order.
var Variants = []Variant{VariantSimple, VariantGradient, VariantVariable}

func (v Variant) String() string {
	switch v {
	case VariantSimple:
		return "simple"
	case VariantGradient:
		return "gradient"
	case VariantVariable:
		return "variable"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// ParseVariant maps a variant name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "simple":
		return VariantSimple, nil
	case "gradient", "linear", "linear-gradient":
		return VariantGradient, nil
	case "variable", "var":
		return VariantVariable, nil
	}
	return 0, ErrValidation(CodeInvalidVariant, fmt.Sprintf("unknown variant %q", s))
}

// LinearGradient is a single-axis gradient. Stop order is paint order.
type LinearGradient struct {
	Angle Angle
	Stops []ColorStop
}

// Clone returns a copy that shares no backing array with g.
func (g LinearGradient) Clone() LinearGradient {
	return LinearGradient{Angle: g.Angle, Stops: slices.Clone(g.Stops)}
}

// Equal compares angle and stops in order.
func (g LinearGradient) Equal(o LinearGradient) bool {
	return g.Angle == o.Angle && slices.Equal(g.Stops, o.Stops)
}

// Value is a colour value: exactly one of simple colour, linear gradient or
// theme variable reference. Values are immutable; edits build new values.
// The zero Value is a simple transparent black.
type Value struct {
	variant  Variant
	color    Color
	gradient LinearGradient
	name     string
}

// Simple returns a flat colour value.
func Simple(c Color) Value {
	return Value{variant: VariantSimple, color: c}
}

// Gradient returns a gradient value. The stops are copied.
func Gradient(g LinearGradient) Value {
	return Value{variant: VariantGradient, gradient: g.Clone()}
}

// Variable returns a theme variable reference. A bare "--" has no
// identifier and is rejected like an empty name.
func Variable(name string) (Value, error) {
	if trimmed := strings.TrimSpace(name); trimmed == "" || trimmed == "--" {
		return Value{}, ErrEmptyVariableName()
	}
	return Value{variant: VariantVariable, name: name}, nil
}

// Variant returns the active arm.
func (v Value) Variant() Variant { return v.variant }

// Color returns the flat colour when the value is simple.
func (v Value) Color() (Color, bool) {
	if v.variant != VariantSimple {
		return Color{}, false
	}
	return v.color, true
}

// Gradient returns a copy of the gradient when the value is a gradient.
func (v Value) Gradient() (LinearGradient, bool) {
	if v.variant != VariantGradient {
		return LinearGradient{}, false
	}
	return v.gradient.Clone(), true
}

// VariableName returns the referenced variable when the value is a reference.
func (v Value) VariableName() (string, bool) {
	if v.variant != VariantVariable {
		return "", false
	}
	return v.name, true
}

// Equal compares variant and the active fields only.
func (v Value) Equal(o Value) bool {
	if v.variant != o.variant {
		return false
	}
	switch v.variant {
	case VariantSimple:
		return v.color == o.color
	case VariantGradient:
		return v.gradient.Equal(o.gradient)
	case VariantVariable:
		return v.name == o.name
	}
	return false
}

func (v Value) String() string {
	switch v.variant {
	case VariantSimple:
		return "simple(" + v.color.String() + ")"
	case VariantGradient:
		return fmt.Sprintf("gradient(angle=%s, stops=%d)", v.gradient.Angle.Kind(), len(v.gradient.Stops))
	case VariantVariable:
		return "variable(" + v.name + ")"
	}
	return "invalid"
}
