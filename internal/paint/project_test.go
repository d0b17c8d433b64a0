package paint

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/resolve"
)

var (
	red   = core.RGB(255, 0, 0)
	green = core.RGB(0, 128, 0)
	blue  = core.RGB(0, 0, 255)
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProject_Simple(t *testing.T) {
	p, err := NewProjector(nil).Project(core.Simple(red), nil)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if p.Kind != KindSolid || p.Solid != red.RGBA {
		t.Errorf("Project() = %v, want solid red", p)
	}
}

func TestProject_UnmappedColorFails(t *testing.T) {
	_, err := NewProjector(nil).Project(core.Simple(core.UnmappedColor("blurple")), nil)
	if !errors.Is(err, core.ErrInvalidColor) {
		t.Fatalf("Project() error = %v, want InvalidColor", err)
	}

	g := core.Gradient(core.LinearGradient{Stops: []core.ColorStop{core.Stop(red), core.Stop(core.UnmappedColor("nope"))}})
	if _, err := NewProjector(nil).Project(g, nil); !errors.Is(err, core.ErrInvalidColor) {
		t.Fatalf("Project() gradient error = %v, want InvalidColor", err)
	}
}

func TestProject_VariableResolves(t *testing.T) {
	theme := core.ThemeFunc(func(name string) (color.Color, bool) {
		if name == "--accent" {
			return color.NRGBA{R: 1, G: 2, B: 3, A: 255}, true
		}
		return nil, false
	})
	v, _ := core.Variable("--accent")
	p, err := NewProjector(nil).Project(v, theme)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if p.Solid != (core.RGBA8{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Project() = %v", p)
	}

	miss, _ := core.Variable("--missing")
	proj := NewProjector(resolve.New(resolve.WithFallback(core.Black)))
	p, err = proj.Project(miss, theme)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if p.Kind != KindSolid || p.Solid != core.Black {
		t.Errorf("Project() miss = %v, want fallback black", p)
	}
}

func TestProject_EmptyGradient(t *testing.T) {
	_, err := NewProjector(nil).Project(core.Gradient(core.LinearGradient{}), nil)
	if !errors.Is(err, core.ErrEmptyGradientStops) {
		t.Fatalf("Project() error = %v, want EmptyGradient", err)
	}
}

func TestProject_SingleStopIsSolid(t *testing.T) {
	for _, pos := range []core.StopPosition{{}, core.Percent(30), core.Length(4, core.UnitEm)} {
		g := core.LinearGradient{
			Angle: core.ConstantAngle(45, core.UnitDeg),
			Stops: []core.ColorStop{{Color: blue, Position: pos}},
		}
		p, err := NewProjector(nil).Project(core.Gradient(g), nil)
		if err != nil {
			t.Fatalf("Project() error = %v", err)
		}
		if p.Kind != KindSolid || p.Solid != blue.RGBA {
			t.Errorf("Project() = %v, want solid blue", p)
		}
	}
}

func TestProject_MiddleStopDefaultsToHalf(t *testing.T) {
	g := core.LinearGradient{Stops: []core.ColorStop{
		{Color: blue, Position: core.Percent(0)},
		core.Stop(green),
		{Color: red, Position: core.Percent(100)},
	}}
	p, err := NewProjector(nil).Project(core.Gradient(g), nil)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if p.Kind != KindGradient || len(p.Stops) != 3 {
		t.Fatalf("Project() = %v", p)
	}
	if p.Stops[1].Color != green.RGBA || !approx(p.Stops[1].Offset, 0.5) {
		t.Errorf("middle stop = %+v, want green at 0.5", p.Stops[1])
	}
	if p.Angle != 90 {
		t.Errorf("unset angle projected to %v, want 90", p.Angle)
	}
}

func TestOffsets_EvenDistribution(t *testing.T) {
	for n := 2; n <= 8; n++ {
		stops := make([]core.ColorStop, n)
		for i := range stops {
			stops[i] = core.Stop(red)
		}
		got := Offsets(stops, 0, DefaultFontSize)
		for i, off := range got {
			want := float64(i) / float64(n-1)
			if !approx(off, want) {
				t.Errorf("n=%d offset[%d] = %v, want %v", n, i, off, want)
			}
		}
	}
}

func TestOffsets_RunsBetweenExplicitStops(t *testing.T) {
	stops := []core.ColorStop{
		core.Stop(red),
		{Color: red, Position: core.Percent(20)},
		core.Stop(red),
		core.Stop(red),
		core.Stop(red),
		{Color: red, Position: core.Percent(60)},
		core.Stop(red),
	}
	want := []float64{0, 0.2, 0.3, 0.4, 0.5, 0.6, 1}
	got := Offsets(stops, 0, DefaultFontSize)
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("offset[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOffsets_PositionsNotClamped(t *testing.T) {
	stops := []core.ColorStop{
		{Color: red, Position: core.Percent(-10)},
		{Color: red, Position: core.Percent(150)},
	}
	got := Offsets(stops, 0, DefaultFontSize)
	if !approx(got[0], -0.1) || !approx(got[1], 1.5) {
		t.Errorf("Offsets() = %v, want [-0.1 1.5]", got)
	}
}

func TestOffsets_Lengths(t *testing.T) {
	stops := []core.ColorStop{
		{Color: red, Position: core.Length(50, core.UnitPx)},
		{Color: red, Position: core.Length(2, core.UnitEm)},
		{Color: red, Position: core.Length(10, core.UnitRem)},
	}

	got := Offsets(stops, 200, 10)
	for i, want := range []float64{0.25, 0.1, 0.5} {
		if !approx(got[i], want) {
			t.Errorf("offset[%d] = %v, want %v", i, got[i], want)
		}
	}

	// no axis length: lengths behave as unpositioned
	got = Offsets(stops, 0, 10)
	for i, want := range []float64{0, 0.5, 1} {
		if !approx(got[i], want) {
			t.Errorf("unsized offset[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestProject_AxisLengthOption(t *testing.T) {
	g := core.LinearGradient{Stops: []core.ColorStop{
		core.Stop(red),
		{Color: blue, Position: core.Length(1, core.UnitEm)},
	}}
	p, err := NewProjector(nil).Project(core.Gradient(g), nil, WithAxisLength(64), WithFontSize(32))
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if !approx(p.Stops[1].Offset, 0.5) {
		t.Errorf("offset = %v, want 0.5", p.Stops[1].Offset)
	}
}

func TestAngleDegrees_Units(t *testing.T) {
	tests := []struct {
		angle core.Angle
		want  float64
	}{
		{core.Angle{}, 90},
		{core.ConstantAngle(45, core.UnitDeg), 45},
		{core.ConstantAngle(100, core.UnitGrad), 90},
		{core.ConstantAngle(math.Pi, core.UnitRad), 180},
		{core.ConstantAngle(0.25, core.UnitTurn), 90},
		{core.ConstantAngle(-90, core.UnitDeg), 270},
		{core.ConstantAngle(720, core.UnitDeg), 0},
		{core.ConstantAngle(1.5, core.UnitTurn), 180},
	}
	for _, tt := range tests {
		if got := AngleDegrees(tt.angle); !approx(got, tt.want) {
			t.Errorf("AngleDegrees(%+v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestDirectionDegrees_EightDistinct(t *testing.T) {
	want := map[string]float64{
		"to top":          0,
		"to top right":    45,
		"to right":        90,
		"to bottom right": 135,
		"to bottom":       180,
		"to bottom left":  225,
		"to left":         270,
		"to top left":     315,
	}
	seen := make(map[float64]bool)
	dirs := core.Directions()
	if len(dirs) != 8 {
		t.Fatalf("Directions() returned %d entries", len(dirs))
	}
	for _, d := range dirs {
		got := AngleDegrees(core.DirectionAngle(d))
		if got < 0 || got >= 360 {
			t.Errorf("%s = %v, out of range", d, got)
		}
		if seen[got] {
			t.Errorf("%s maps to duplicate angle %v", d, got)
		}
		seen[got] = true
		if w, ok := want[d.String()]; !ok || w != got {
			t.Errorf("%s = %v, want %v", d, got, w)
		}
	}
}

func TestDirectionDegrees_OrderIndependent(t *testing.T) {
	a := core.MustDirection(core.SideLeft, core.SideTop)
	b := core.MustDirection(core.SideTop, core.SideLeft)
	if DirectionDegrees(a) != DirectionDegrees(b) {
		t.Errorf("left top = %v, top left = %v", DirectionDegrees(a), DirectionDegrees(b))
	}
}
