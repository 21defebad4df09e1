package ui

// centeredX returns the x that centres content of width w in a span of
// width span.
func centeredX(w, span int) int {
	return (span - w) / 2
}

// popupRect returns the popup box for a message of textW pixels on a screen
// of screenW*screenH pixels.
func popupRect(textW, textH, screenW, screenH int) (x, y, w, h int) {
	w = textW + 2*popupPadding
	h = textH + 2*popupPadding + hintHeight
	if w > screenW {
		w = screenW
	}
	return centeredX(w, screenW), centeredX(h, screenH), w, h
}

const (
	scoreTop     = 12
	popupPadding = 24
	hintHeight   = 20
)
