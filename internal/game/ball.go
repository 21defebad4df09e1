package game

import "duel-pong/internal/core"

// Ball is a projectile fired by a paddle. Pos is the centre.
type Ball struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64
}

// Advance moves the ball by its velocity. There is no bounds checking and
// no vertical bounce.
func (b *Ball) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Bounds returns the ball's bounding box.
func (b Ball) Bounds() core.Rect {
	return core.FromCenter(b.Pos, b.Size, b.Size)
}
