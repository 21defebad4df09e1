package render

import (
	"image/color"
	"testing"

	"duel-pong/internal/core"
)

func TestToScreenFlipsY(t *testing.T) {
	v := NewViewport(800, 600, 1)
	got := v.ToScreen(core.Rect{X: 0, Y: 0, W: 25, H: 200})
	want := core.Rect{X: 0, Y: 400, W: 25, H: 200}
	if got != want {
		t.Fatalf("ToScreen = %+v, want %+v", got, want)
	}

	got = v.ToScreen(core.Rect{X: 775, Y: 400, W: 25, H: 200})
	if got.Y != 0 {
		t.Fatalf("paddle at the top should start at screen y=0, got %+v", got)
	}
}

func TestToScreenScales(t *testing.T) {
	v := NewViewport(100, 50, 2)
	got := v.ToScreen(core.Rect{X: 10, Y: 10, W: 5, H: 5})
	want := core.Rect{X: 20, Y: 70, W: 10, H: 10}
	if got != want {
		t.Fatalf("ToScreen = %+v, want %+v", got, want)
	}
	if w, h := v.ScreenSize(); w != 200 || h != 100 {
		t.Fatalf("ScreenSize = %d x %d", w, h)
	}
}

func TestNewViewportRejectsZeroScale(t *testing.T) {
	if v := NewViewport(10, 10, 0); v.Scale != 1 {
		t.Fatalf("scale=%v, want 1", v.Scale)
	}
}

func TestDim(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := Dim(c, 0.5); got != (color.RGBA{R: 100, G: 50, B: 25, A: 255}) {
		t.Fatalf("Dim = %+v", got)
	}
	if got := Dim(c, 3); got != c {
		t.Fatalf("Dim above 1 should clamp, got %+v", got)
	}
}
