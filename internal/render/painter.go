//go:build ebiten

package render

import (
	"image/color"

	"duel-pong/internal/core"
	"duel-pong/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws a match snapshot onto an ebiten image.
type Painter struct {
	view    Viewport
	palette Palette
}

// NewPainter allocates a painter for the given viewport.
func NewPainter(view Viewport, palette Palette) *Painter {
	return &Painter{view: view, palette: palette}
}

// Viewport returns the mapping in use.
func (p *Painter) Viewport() Viewport { return p.view }

// Draw paints the arena, both paddles and every live ball.
func (p *Painter) Draw(dst *ebiten.Image, s game.Snapshot) {
	dst.Fill(p.palette.Background)
	p.drawMidline(dst)
	p.drawPaddle(dst, s.Player1, p.palette.Left)
	p.drawPaddle(dst, s.Player2, p.palette.Right)
	for _, b := range s.Balls {
		r := p.view.ToScreen(b)
		c := r.Center()
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(r.W/2), p.palette.Ball, true)
	}
}

// Outline strokes r, used by the hitbox overlay.
func (p *Painter) Outline(dst *ebiten.Image, r core.Rect, clr color.Color) {
	sr := p.view.ToScreen(r)
	vector.StrokeRect(dst, float32(sr.X), float32(sr.Y), float32(sr.W), float32(sr.H), 1, clr, false)
}

func (p *Painter) drawPaddle(dst *ebiten.Image, pv game.PaddleView, clr color.RGBA) {
	if !pv.Ready {
		clr = Dim(clr, 0.6)
	}
	r := p.view.ToScreen(pv.Bounds)
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (p *Painter) drawMidline(dst *ebiten.Image) {
	w, h := p.view.ScreenSize()
	x := float32(w) / 2
	const dash, gap = 12, 10
	for y := float32(0); y < float32(h); y += dash + gap {
		vector.DrawFilledRect(dst, x-1, y, 2, dash, p.palette.Midline, false)
	}
}
