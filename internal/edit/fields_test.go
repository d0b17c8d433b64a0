package edit

import (
	"errors"
	"testing"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
)

func threeStops() core.Value {
	return core.Gradient(core.LinearGradient{
		Stops: []core.ColorStop{
			{Color: core.RGB(255, 0, 0), Position: core.Percent(0)},
			core.Stop(core.RGB(0, 255, 0)),
			{Color: core.RGB(0, 0, 255), Position: core.Length(10, core.UnitPx)},
		},
	})
}

func stops(t *testing.T, v core.Value) []core.ColorStop {
	t.Helper()
	g, ok := v.Gradient()
	if !ok {
		t.Fatalf("value %s is not a gradient", v)
	}
	return g.Stops
}

func TestWrongVariant(t *testing.T) {
	simple := core.Simple(core.RGB(1, 1, 1))
	ref, _ := core.Variable("--x")

	cases := []struct {
		name string
		edit Edit
		v    core.Value
	}{
		{"color on gradient", SetSimpleColor(core.RGB(0, 0, 0)), threeStops()},
		{"name on simple", SetVariableName("--y"), simple},
		{"angle on simple", SetAngleKind(core.AngleConstant), simple},
		{"stop on variable", AppendStop(core.Stop(core.RGB(0, 0, 0))), ref},
	}
	for _, tt := range cases {
		if _, err := tt.edit(tt.v); !errors.Is(err, core.ErrWrongVariantKind) {
			t.Errorf("%s: error = %v, want WrongVariant", tt.name, err)
		}
	}
}

func TestSetVariableName(t *testing.T) {
	ref, _ := core.Variable("--x")

	got, err := SetVariableName("  --hover ")(ref)
	if err != nil {
		t.Fatalf("SetVariableName() error = %v", err)
	}
	if name, _ := got.VariableName(); name != "--hover" {
		t.Errorf("name = %q", name)
	}

	for _, blank := range []string{"   ", "--", " -- "} {
		if _, err := SetVariableName(blank)(ref); !errors.Is(err, core.ErrEmptyVariable) {
			t.Errorf("SetVariableName(%q) error = %v, want EmptyVariableName", blank, err)
		}
	}
}

func TestSetDirectionRejectsUnconstructedDirection(t *testing.T) {
	v := threeStops()
	got, err := SetDirection(core.Direction{})(v)
	if !errors.Is(err, core.ErrInvalidDirection) {
		t.Fatalf("SetDirection(zero) error = %v, want InvalidDirectionPair", err)
	}
	if got.Variant() == core.VariantGradient {
		t.Errorf("SetDirection(zero) returned a gradient: %v", got)
	}
	if g, _ := v.Gradient(); g.Angle.Kind() == core.AngleDirection {
		t.Errorf("input gradient was modified: %+v", g.Angle)
	}
}

func TestAngleEditsKeepStops(t *testing.T) {
	v := threeStops()
	want := stops(t, v)

	edits := []Edit{
		SetAngleKind(core.AngleConstant),
		SetAngleMagnitude(30),
		SetAngleUnit(core.UnitTurn),
		SetAngleKind(core.AngleDirection),
		SetDirection(core.MustDirection(core.SideLeft, core.SideBottom)),
		ClearAngle(),
	}
	for i, e := range edits {
		var err error
		if v, err = e(v); err != nil {
			t.Fatalf("edit %d error = %v", i, err)
		}
		got := stops(t, v)
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("edit %d changed stop %d: %+v", i, j, got[j])
			}
		}
	}
}

func TestSetAngleKind(t *testing.T) {
	v, err := SetAngleKind(core.AngleConstant)(threeStops())
	if err != nil {
		t.Fatal(err)
	}
	g, _ := v.Gradient()
	if m, u, ok := g.Angle.Constant(); !ok || m != 0 || u != core.UnitDeg {
		t.Errorf("constant angle = %v %v %v", m, u, ok)
	}

	v, _ = SetAngleMagnitude(120)(v)
	v, _ = SetAngleKind(core.AngleConstant)(v)
	g, _ = v.Gradient()
	if m, _, _ := g.Angle.Constant(); m != 120 {
		t.Errorf("reselecting constant reset magnitude to %v", m)
	}

	v, _ = SetAngleKind(core.AngleDirection)(v)
	g, _ = v.Gradient()
	if d, ok := g.Angle.Direction(); !ok || d.String() != "to right" {
		t.Errorf("direction = %v %v", d, ok)
	}
}

func TestSetAngleUnitKeepsMagnitude(t *testing.T) {
	v, _ := SetAngleMagnitude(0.5)(threeStops())
	v, _ = SetAngleUnit(core.UnitTurn)(v)
	g, _ := v.Gradient()
	if m, u, _ := g.Angle.Constant(); m != 0.5 || u != core.UnitTurn {
		t.Errorf("angle = %v%v, want 0.5turn", m, u)
	}
}

func TestStopListEdits(t *testing.T) {
	v := threeStops()
	orig := stops(t, v)
	extra := core.Stop(core.RGB(9, 9, 9))

	got, err := InsertStop(1, extra)(v)
	if err != nil {
		t.Fatal(err)
	}
	s := stops(t, got)
	if len(s) != 4 || s[1] != extra || s[2] != orig[1] {
		t.Errorf("InsertStop() = %+v", s)
	}

	got, _ = InsertStop(3, extra)(v)
	if s := stops(t, got); s[3] != extra {
		t.Errorf("InsertStop(end) = %+v", s)
	}

	got, _ = AppendStop(extra)(v)
	if s := stops(t, got); len(s) != 4 || s[3] != extra {
		t.Errorf("AppendStop() = %+v", s)
	}

	got, _ = RemoveStop(0)(v)
	if s := stops(t, got); len(s) != 2 || s[0] != orig[1] || s[1] != orig[2] {
		t.Errorf("RemoveStop() = %+v", s)
	}

	got, _ = MoveStop(0, 2)(v)
	if s := stops(t, got); s[0] != orig[1] || s[1] != orig[2] || s[2] != orig[0] {
		t.Errorf("MoveStop(0,2) = %+v", s)
	}

	got, _ = MoveStop(2, 0)(v)
	if s := stops(t, got); s[0] != orig[2] || s[1] != orig[0] || s[2] != orig[1] {
		t.Errorf("MoveStop(2,0) = %+v", s)
	}

	if s := stops(t, v); len(s) != 3 || s[0] != orig[0] {
		t.Error("stop edits modified the input value")
	}
}

func TestStopIndexOutOfRange(t *testing.T) {
	v := threeStops()
	edits := map[string]Edit{
		"remove":       RemoveStop(3),
		"remove neg":   RemoveStop(-1),
		"insert":       InsertStop(4, core.Stop(core.RGB(0, 0, 0))),
		"move from":    MoveStop(5, 0),
		"move to":      MoveStop(0, 3),
		"color":        SetStopColor(3, core.RGB(0, 0, 0)),
		"position":     SetStopPosition(-2, core.Percent(1)),
		"amount":       SetStopAmount(10, 1),
		"positionKind": SetStopPositionKind(3, core.PositionPercent),
	}
	for name, e := range edits {
		_, err := e(v)
		if !errors.Is(err, core.ErrStopIndexOutOfRange) {
			t.Errorf("%s: error = %v, want StopIndexOutOfRange", name, err)
		}
	}
}

func TestStopFieldEdits(t *testing.T) {
	v := threeStops()

	got, _ := SetStopColor(0, core.RGB(1, 1, 1))(v)
	if s := stops(t, got)[0]; s.Color != core.RGB(1, 1, 1) || s.Position != core.Percent(0) {
		t.Errorf("SetStopColor() = %+v", s)
	}

	got, _ = SetStopAmount(1, 40)(v)
	if s := stops(t, got)[1]; s.Position != core.Percent(40) {
		t.Errorf("SetStopAmount(unset) = %+v", s.Position)
	}

	got, _ = SetStopAmount(2, 24)(v)
	if s := stops(t, got)[2]; s.Position != core.Length(24, core.UnitPx) {
		t.Errorf("SetStopAmount(length) = %+v", s.Position)
	}

	got, _ = SetStopPositionKind(2, core.PositionPercent)(v)
	if s := stops(t, got)[2]; s.Position != core.Percent(0) {
		t.Errorf("SetStopPositionKind(percent) = %+v", s.Position)
	}

	got, _ = SetStopPositionKind(0, core.PositionLength)(v)
	if s := stops(t, got)[0]; s.Position != core.Length(0, core.UnitPx) {
		t.Errorf("SetStopPositionKind(length) = %+v", s.Position)
	}

	got, _ = SetStopPositionKind(2, core.PositionLength)(v)
	if s := stops(t, got)[2]; s.Position != core.Length(10, core.UnitPx) {
		t.Errorf("reselecting length reset the position: %+v", s.Position)
	}

	got, _ = SetStopPositionKind(0, core.PositionNone)(v)
	if s := stops(t, got)[0]; s.Position.IsSet() {
		t.Errorf("SetStopPositionKind(none) = %+v", s.Position)
	}

	got, _ = SetStopPosition(1, core.Length(2, core.UnitRem))(v)
	if s := stops(t, got)[1]; s.Position != core.Length(2, core.UnitRem) || s.Color != core.RGB(0, 255, 0) {
		t.Errorf("SetStopPosition() = %+v", s)
	}
}

func TestChain(t *testing.T) {
	v, err := Chain(
		SetDirection(core.MustDirection(core.SideTop, core.SideNone)),
		RemoveStop(1),
		SetStopAmount(1, 80),
	)(threeStops())
	if err != nil {
		t.Fatalf("Chain() error = %v", err)
	}
	if s := stops(t, v); len(s) != 2 || s[1].Position != core.Length(80, core.UnitPx) {
		t.Errorf("Chain() stops = %+v", s)
	}

	if _, err := Chain(RemoveStop(0), RemoveStop(5))(threeStops()); err == nil {
		t.Error("Chain() should stop at the first error")
	}
}
