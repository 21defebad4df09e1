package core

import "testing"

func TestVecArithmetic(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 10, Y: -4})
	if v != (Vec2{X: 11, Y: -2}) {
		t.Fatalf("Add = %+v", v)
	}
	v = v.Sub(Vec2{X: 1, Y: 1})
	if v != (Vec2{X: 10, Y: -3}) {
		t.Fatalf("Sub = %+v", v)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"edge touch", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"left of", Rect{X: -6, Y: 0, W: 5, H: 5}, false},
		{"above", Rect{X: 0, Y: 11, W: 5, H: 5}, false},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Errorf("%s (swapped): Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFromCenter(t *testing.T) {
	r := FromCenter(Vec2{X: 50, Y: 40}, 20, 10)
	if r.X != 40 || r.Y != 35 || r.W != 20 || r.H != 10 {
		t.Fatalf("FromCenter = %+v", r)
	}
	if c := r.Center(); c != (Vec2{X: 50, Y: 40}) {
		t.Fatalf("Center = %+v", c)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Fatalf("Clamp below = %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Fatalf("Clamp above = %v", got)
	}
	if got := Clamp(3, 0, -1); got != 0 {
		t.Fatalf("Clamp with inverted bounds = %v, want lo", got)
	}
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	c.Set(1.5)
	c.Advance(0.25)
	if c.Now() != 1.75 {
		t.Fatalf("Now = %v, want 1.75", c.Now())
	}
}
