package ui

import "testing"

func TestCenteredX(t *testing.T) {
	if got := centeredX(100, 800); got != 350 {
		t.Fatalf("centeredX = %d, want 350", got)
	}
}

func TestPopupRect(t *testing.T) {
	x, y, w, h := popupRect(200, 30, 800, 600)
	if w != 200+2*popupPadding || h != 30+2*popupPadding+hintHeight {
		t.Fatalf("size %dx%d", w, h)
	}
	if x != (800-w)/2 || y != (600-h)/2 {
		t.Fatalf("origin %d,%d", x, y)
	}

	_, _, w, _ = popupRect(1000, 30, 800, 600)
	if w != 800 {
		t.Fatalf("popup wider than the screen: %d", w)
	}
}
