package codec

import (
	"fmt"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

// Record kinds.
const (
	KindSimple   = "simple"
	KindGradient = "linear-gradient"
	KindVariable = "variable"
)

// Record is the structured, lossless persistence form of a colour value.
// Gradients cross storage boundaries as records rather than as one string.
type Record struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Color    string       `json:"color,omitempty" yaml:"color,omitempty"`
	Variable string       `json:"variable,omitempty" yaml:"variable,omitempty"`
	Angle    *AngleRecord `json:"angle,omitempty" yaml:"angle,omitempty"`
	Stops    []StopRecord `json:"stops,omitempty" yaml:"stops,omitempty"`
}

// AngleRecord stores a set gradient angle.
type AngleRecord struct {
	Kind      string  `json:"kind" yaml:"kind"`
	Value     float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Unit      string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Direction string  `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// StopRecord stores one gradient stop.
type StopRecord struct {
	Color    string          `json:"color" yaml:"color"`
	Position *PositionRecord `json:"position,omitempty" yaml:"position,omitempty"`
}

// PositionRecord stores an explicit stop position.
type PositionRecord struct {
	Kind   string  `json:"kind" yaml:"kind"`
	Amount float64 `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// EncodeRecord converts a value to its record form.
func EncodeRecord(v core.Value) Record {
	switch v.Variant() {
	case core.VariantVariable:
		name, _ := v.VariableName()
		return Record{Kind: KindVariable, Variable: name}
	case core.VariantGradient:
		g, _ := v.Gradient()
		rec := Record{Kind: KindGradient, Stops: make([]StopRecord, 0, len(g.Stops))}
		if g.Angle.IsSet() {
			rec.Angle = encodeAngle(g.Angle)
		}
		for _, s := range g.Stops {
			rec.Stops = append(rec.Stops, encodeStop(s))
		}
		return rec
	default:
		c, _ := v.Color()
		return Record{Kind: KindSimple, Color: c.String()}
	}
}

func encodeAngle(a core.Angle) *AngleRecord {
	if m, unit, ok := a.Constant(); ok {
		return &AngleRecord{Kind: core.AngleConstant.String(), Value: m, Unit: unit.String()}
	}
	d, _ := a.Direction()
	return &AngleRecord{Kind: core.AngleDirection.String(), Direction: d.String()}
}

func encodeStop(s core.ColorStop) StopRecord {
	rec := StopRecord{Color: s.Color.String()}
	switch s.Position.Kind() {
	case core.PositionPercent:
		rec.Position = &PositionRecord{Kind: core.PositionPercent.String(), Amount: s.Position.Amount()}
	case core.PositionLength:
		rec.Position = &PositionRecord{
			Kind:   core.PositionLength.String(),
			Amount: s.Position.Amount(),
			Unit:   s.Position.Unit().String(),
		}
	}
	return rec
}

// DecodeRecord converts a record back to a value. DecodeRecord(EncodeRecord(v))
// equals v for every value.
func DecodeRecord(r Record) (core.Value, error) {
	switch r.Kind {
	case KindSimple:
		return core.Simple(decodeColor(r.Color)), nil
	case KindVariable:
		return core.Variable(r.Variable)
	case KindGradient:
		g := core.LinearGradient{Stops: make([]core.ColorStop, 0, len(r.Stops))}
		if r.Angle != nil {
			a, err := decodeAngle(*r.Angle)
			if err != nil {
				return core.Value{}, err
			}
			g.Angle = a
		}
		for i, s := range r.Stops {
			stop, err := decodeStop(s)
			if err != nil {
				return core.Value{}, fmt.Errorf("stop %d: %w", i, err)
			}
			g.Stops = append(g.Stops, stop)
		}
		return core.Gradient(g), nil
	}
	return core.Value{}, core.ErrValidation(core.CodeInvalidRecord, fmt.Sprintf("unknown record kind %q", r.Kind))
}

// decodeColor keeps unknown tokens as unmapped colours so records written
// mid-edit load back unchanged.
func decodeColor(s string) core.Color {
	c, err := ParseColor(s)
	if err != nil {
		return core.UnmappedColor(s)
	}
	return c
}

func decodeAngle(r AngleRecord) (core.Angle, error) {
	switch r.Kind {
	case core.AngleConstant.String():
		u, err := core.ParseAngleUnit(r.Unit)
		if err != nil {
			return core.Angle{}, err
		}
		return core.ConstantAngle(r.Value, u), nil
	case core.AngleDirection.String():
		d, err := ParseDirection(r.Direction)
		if err != nil {
			return core.Angle{}, err
		}
		return core.DirectionAngle(d), nil
	}
	return core.Angle{}, core.ErrValidation(core.CodeInvalidRecord, fmt.Sprintf("unknown angle kind %q", r.Kind))
}

func decodeStop(r StopRecord) (core.ColorStop, error) {
	stop := core.ColorStop{Color: decodeColor(r.Color)}
	if r.Position == nil {
		return stop, nil
	}
	switch r.Position.Kind {
	case core.PositionPercent.String():
		stop.Position = core.Percent(r.Position.Amount)
	case core.PositionLength.String():
		u, err := core.ParseLengthUnit(r.Position.Unit)
		if err != nil {
			return core.ColorStop{}, err
		}
		stop.Position = core.Length(r.Position.Amount, u)
	default:
		return core.ColorStop{}, core.ErrValidation(core.CodeInvalidRecord, fmt.Sprintf("unknown position kind %q", r.Position.Kind))
	}
	return stop, nil
}
