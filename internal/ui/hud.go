//go:build ebiten

package ui

import (
	"image/color"

	"duel-pong/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the score label centred at the top of the arena, and a line of
// key hints along the bottom.
type HUD struct {
	face  font.Face
	color color.Color
	label string
}

// NewHUD loads the score font.
func NewHUD(clr color.Color) (*HUD, error) {
	face, err := loadBold(30)
	if err != nil {
		return nil, err
	}
	return &HUD{face: face, color: clr, label: "0 : 0"}, nil
}

// ScoreChanged updates the label. HUD is usable as part of a game.Listener.
func (h *HUD) ScoreChanged(text string) {
	if h == nil {
		return
	}
	h.label = text
}

// Sync copies the label from a snapshot, for a HUD attached mid-match.
func (h *HUD) Sync(s game.Snapshot) {
	if h == nil {
		return
	}
	h.label = s.ScoreText
}

// Draw paints the score label and control hints.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	bounds := text.BoundString(h.face, h.label)
	x := centeredX(bounds.Dx(), sw)
	text.Draw(screen, h.label, h.face, x, scoreTop-bounds.Min.Y, h.color)

	hint := "W/S + Space    Up/Down + Enter    P pause  R restart  Esc quit"
	if paused {
		hint = "PAUSED - press P to resume"
	}
	face := basicfont.Face7x13
	hb := text.BoundString(face, hint)
	text.Draw(screen, hint, face, centeredX(hb.Dx(), sw), sh-8, color.RGBA{R: 140, G: 140, B: 150, A: 255})
}
