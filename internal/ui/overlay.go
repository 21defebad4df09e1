//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"duel-pong/internal/game"
	"duel-pong/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws collision boxes and tick counters on top of the arena.
type Overlay struct {
	painter *render.Painter
	show    bool
}

// NewOverlay constructs a hidden overlay that draws through painter.
func NewOverlay(painter *render.Painter, show bool) *Overlay {
	return &Overlay{painter: painter, show: show}
}

// Update toggles visibility on F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.show = !o.show
	}
}

// Draw outlines every AABB in the snapshot.
func (o *Overlay) Draw(screen *ebiten.Image, s game.Snapshot) {
	if !o.show {
		return
	}
	box := color.RGBA{R: 255, G: 220, B: 0, A: 255}
	o.painter.Outline(screen, s.Player1.Bounds, box)
	o.painter.Outline(screen, s.Player2.Bounds, box)
	for _, b := range s.Balls {
		o.painter.Outline(screen, b, box)
	}
	info := fmt.Sprintf("tick %d  balls %d  state %s\nTPS %.1f  FPS %.1f",
		s.Tick, len(s.Balls), s.State, ebiten.ActualTPS(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, info, 4, 4)
}
