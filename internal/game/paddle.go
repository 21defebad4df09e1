package game

import (
	"math"

	"duel-pong/internal/core"
)

// Side identifies which end of the arena a paddle defends.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Paddle is a player's bat. Pos is the corner with the smallest coordinates;
// the arena's y axis points up, matching the direction of MoveUp.
type Paddle struct {
	Side     Side
	Pos      core.Vec2
	Width    float64
	Height   float64
	Velocity float64
	Score    uint32
	LastShot float64
}

// NewPaddle places a paddle for side at pos.
func NewPaddle(side Side, pos core.Vec2, width, height float64) *Paddle {
	return &Paddle{
		Side:     side,
		Pos:      pos,
		Width:    width,
		Height:   height,
		LastShot: -MinShotInterval,
	}
}

// MoveUp starts moving the paddle towards the top of the arena.
func (p *Paddle) MoveUp() { p.Velocity = PaddleSpeed }

// MoveDown starts moving the paddle towards the bottom of the arena.
func (p *Paddle) MoveDown() { p.Velocity = -PaddleSpeed }

// Stop halts vertical motion.
func (p *Paddle) Stop() { p.Velocity = 0 }

// Update applies one tick of motion and keeps the paddle inside
// [0, arenaHeight-Height]. Velocity is per tick, so dt is unused.
func (p *Paddle) Update(dt, arenaHeight float64) {
	p.Pos.Y = core.Clamp(p.Pos.Y+p.Velocity, 0, arenaHeight-p.Height)
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.Rect {
	return core.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Center returns the midpoint of the paddle.
func (p *Paddle) Center() core.Vec2 { return p.Bounds().Center() }

// Ready reports whether the shot cooldown has elapsed at now.
func (p *Paddle) Ready(now float64) bool {
	return now-p.LastShot >= MinShotInterval
}

// Shoot spawns a ball of the given size when the cooldown has elapsed. The
// paddle's side fixes both the spawn offset and the direction: left fires
// right, right fires left. speed is a magnitude.
func (p *Paddle) Shoot(now, speed, size float64) (Ball, bool) {
	if !p.Ready(now) {
		return Ball{}, false
	}
	p.LastShot = now

	speed = math.Abs(speed)
	offset := core.Vec2{X: ShotOffsetX, Y: ShotOffsetY}
	vel := core.Vec2{X: speed}
	if p.Side == SideRight {
		offset.X = -ShotOffsetX
		vel.X = -speed
	}
	return Ball{
		Pos:  p.Center().Add(offset),
		Vel:  vel,
		Size: size,
	}, true
}

// Catch tests b against the paddle and scores a point on contact. The caller
// removes a caught ball.
func (p *Paddle) Catch(b Ball) bool {
	if !p.Bounds().Overlaps(b.Bounds()) {
		return false
	}
	p.Score++
	return true
}
