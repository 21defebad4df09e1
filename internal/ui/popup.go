//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Popup is the modal shown when a match ends.
type Popup struct {
	face    font.Face
	bg      color.Color
	fg      color.Color
	message string
}

// NewPopup loads the popup font.
func NewPopup(bg, fg color.Color) (*Popup, error) {
	face, err := loadBold(26)
	if err != nil {
		return nil, err
	}
	return &Popup{face: face, bg: bg, fg: fg}, nil
}

// Show sets the message; an empty message hides the popup.
func (p *Popup) Show(message string) {
	if p == nil {
		return
	}
	p.message = message
}

// Visible reports whether a message is set.
func (p *Popup) Visible() bool { return p != nil && p.message != "" }

// Draw paints the popup over the screen centre.
func (p *Popup) Draw(screen *ebiten.Image) {
	if !p.Visible() {
		return
	}
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()
	bounds := text.BoundString(p.face, p.message)
	x, y, w, h := popupRect(bounds.Dx(), bounds.Dy(), sw, sh)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), p.bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, p.fg, false)

	tx := x + centeredX(bounds.Dx(), w)
	ty := y + popupPadding - bounds.Min.Y
	text.Draw(screen, p.message, p.face, tx, ty, p.fg)

	hint := "R: new match   Esc: quit"
	face := basicfont.Face7x13
	hb := text.BoundString(face, hint)
	text.Draw(screen, hint, face, x+centeredX(hb.Dx(), w), y+h-popupPadding/2, p.fg)
}
