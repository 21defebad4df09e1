package core

// Rect is an axis-aligned bounding box. X, Y is the corner with the smallest
// coordinates; W and H are never negative.
type Rect struct {
	X, Y float64
	W, H float64
}

// FromCenter builds a rectangle of size w*h centred on c.
func FromCenter(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the far edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the far edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Overlaps reports whether r and o share a non-empty area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Top() || o.Y >= r.Top() {
		return false
	}
	return true
}

// Clamp restricts v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
