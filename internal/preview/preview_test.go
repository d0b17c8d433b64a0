package preview

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/hugo-lorenzo-mato/swatch/internal/core"
	"github.com/hugo-lorenzo-mato/swatch/internal/paint"
)

var (
	red  = core.RGBA8{R: 255, A: 255}
	blue = core.RGBA8{B: 255, A: 255}
)

func TestRender_Dimensions(t *testing.T) {
	p := paint.Linear(90, []paint.Stop{{Color: red, Offset: 0}, {Color: blue, Offset: 1}})
	out := Render(p, 12, 3)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Render() produced %d lines, want 3", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 12 {
			t.Errorf("line %d width = %d, want 12", i, w)
		}
	}
	if Render(p, 0, 3) != "" {
		t.Error("Render() with zero width should be empty")
	}
}

func TestAxisOffset(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		px, py float64
		want   float64
	}{
		{"to right, left edge", 90, 0, 5, 0},
		{"to right, right edge", 90, 10, 5, 1},
		{"to right, centre", 90, 5, 5, 0.5},
		{"to top, bottom edge", 0, 5, 10, 0},
		{"to top, top edge", 0, 5, 0, 1},
		{"to bottom, top edge", 180, 5, 0, 0},
		{"to left, left edge", 270, 0, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AxisOffset(tt.angle, tt.px, tt.py, 10, 10); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AxisOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorAt(t *testing.T) {
	stops := []paint.Stop{{Color: red, Offset: 0.2}, {Color: blue, Offset: 0.8}}

	if got := ColorAt(stops, 0); got != red {
		t.Errorf("before first stop = %s", got.Hex())
	}
	if got := ColorAt(stops, 1); got != blue {
		t.Errorf("after last stop = %s", got.Hex())
	}
	if got := ColorAt(stops, 0.5); got != (core.RGBA8{R: 128, B: 128, A: 255}) {
		t.Errorf("midpoint = %s, want #800080", got.Hex())
	}
	if got := ColorAt(nil, 0.5); got != core.Transparent {
		t.Errorf("no stops = %s", got.Hex())
	}
}

func TestColorAt_OutOfOrderStops(t *testing.T) {
	green := core.RGBA8{G: 255, A: 255}
	stops := []paint.Stop{{Color: red, Offset: 0.5}, {Color: green, Offset: 0.2}, {Color: blue, Offset: 1}}
	if got := ColorAt(stops, 0.5); got != red {
		t.Errorf("at 0.5 = %s, want red", got.Hex())
	}
	if got := ColorAt(stops, 0.50001); got.G < 250 {
		t.Errorf("just past 0.5 = %s, want near green", got.Hex())
	}
}

func TestSample_Solid(t *testing.T) {
	if got := Sample(paint.Solid(red), 3, 1, 10, 4, DefaultCellAspect); got != red {
		t.Errorf("Sample() = %s", got.Hex())
	}
}

func TestSample_HorizontalGradient(t *testing.T) {
	p := paint.Linear(90, []paint.Stop{{Color: red, Offset: 0}, {Color: blue, Offset: 1}})
	left := Sample(p, 0, 0, 10, 2, DefaultCellAspect)
	right := Sample(p, 9, 0, 10, 2, DefaultCellAspect)
	if left.R <= left.B || right.B <= right.R {
		t.Errorf("left=%s right=%s", left.Hex(), right.Hex())
	}
	if a, b := Sample(p, 4, 0, 10, 2, DefaultCellAspect), Sample(p, 4, 1, 10, 2, DefaultCellAspect); a != b {
		t.Errorf("rows differ for a horizontal gradient: %s %s", a.Hex(), b.Hex())
	}
}

func TestComposite(t *testing.T) {
	half := core.RGBA8{R: 255, A: 128}
	got := Composite(half, core.Black)
	if got.A != 255 || got.R != 128 || got.G != 0 {
		t.Errorf("Composite() = %s", got.Hex())
	}
	if Composite(red, core.White) != red {
		t.Error("opaque colours should pass through")
	}
	if Composite(core.Transparent, core.White) != core.White {
		t.Error("transparent should show the background")
	}
}

func TestBlend_Alpha(t *testing.T) {
	got := Blend(core.RGBA8{A: 0}, core.RGBA8{A: 255}, 0.5)
	if got.A != 128 {
		t.Errorf("alpha = %d, want 128", got.A)
	}
}
