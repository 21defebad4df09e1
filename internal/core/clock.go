package core

import "time"

// Clock reports elapsed time in seconds on a monotonic scale.
type Clock interface {
	Now() float64
}

// WallClock measures seconds since it was created using the runtime's
// monotonic clock reading.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the seconds elapsed since NewWallClock.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// ManualClock only moves when told to. Useful for deterministic stepping.
type ManualClock struct {
	t float64
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 { return c.t }

// Set jumps to t seconds.
func (c *ManualClock) Set(t float64) { c.t = t }

// Advance moves the clock forward by d seconds.
func (c *ManualClock) Advance(d float64) { c.t += d }
