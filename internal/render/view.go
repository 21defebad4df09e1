package render

import (
	"image/color"

	"duel-pong/internal/core"
)

// Viewport maps arena coordinates (y up) onto screen pixels (y down).
type Viewport struct {
	ArenaW, ArenaH float64
	Scale          float64
}

// NewViewport returns a viewport for an arena of w*h units drawn at scale.
func NewViewport(w, h, scale float64) Viewport {
	if scale <= 0 {
		scale = 1
	}
	return Viewport{ArenaW: w, ArenaH: h, Scale: scale}
}

// ScreenSize returns the pixel dimensions of the whole arena.
func (v Viewport) ScreenSize() (int, int) {
	return int(v.ArenaW * v.Scale), int(v.ArenaH * v.Scale)
}

// ToScreen converts an arena rectangle into screen space. The returned Y is
// the top edge on screen.
func (v Viewport) ToScreen(r core.Rect) core.Rect {
	return core.Rect{
		X: r.X * v.Scale,
		Y: (v.ArenaH - r.Top()) * v.Scale,
		W: r.W * v.Scale,
		H: r.H * v.Scale,
	}
}

// Palette holds the colours used to draw a match.
type Palette struct {
	Background color.RGBA
	Midline    color.RGBA
	Left       color.RGBA
	Right      color.RGBA
	Ball       color.RGBA
	Text       color.RGBA
	Popup      color.RGBA
}

// DefaultPalette is white-on-black with tinted paddles.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 12, G: 12, B: 16, A: 255},
		Midline:    color.RGBA{R: 60, G: 60, B: 70, A: 255},
		Left:       color.RGBA{R: 120, G: 220, B: 140, A: 255},
		Right:      color.RGBA{R: 230, G: 110, B: 110, A: 255},
		Ball:       color.RGBA{R: 240, G: 240, B: 240, A: 255},
		Text:       color.RGBA{R: 220, G: 220, B: 230, A: 255},
		Popup:      color.RGBA{R: 16, G: 16, B: 20, A: 220},
	}
}

// Dim scales the colour channels of c by f in [0, 1], keeping alpha.
func Dim(c color.RGBA, f float64) color.RGBA {
	f = core.Clamp(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
