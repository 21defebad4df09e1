package app

import "duel-pong/internal/game"

// keyEdges is one frame of key transitions, already mapped to logical keys.
type keyEdges struct {
	pressed  []game.Key
	released []game.Key
}

// controls feeds key transitions into a match and owns the pause state.
// Releases that happen while paused are never reported by the shell, so
// pausing stops both paddles and resuming re-applies the movement keys that
// are still held.
type controls struct {
	paused bool
}

// apply forwards one frame of edges unless paused.
func (c *controls) apply(m *game.Match, e keyEdges) {
	if c.paused {
		return
	}
	for _, k := range e.pressed {
		m.KeyDown(k)
	}
	for _, k := range e.released {
		m.KeyUp(k)
	}
}

// togglePause flips the pause state. held lists the logical keys down at the
// moment of resuming. A finished match cannot be paused.
func (c *controls) togglePause(m *game.Match, held []game.Key) {
	if !c.paused {
		if m.Over() {
			return
		}
		c.paused = true
		m.Player1.Stop()
		m.Player2.Stop()
		return
	}
	c.paused = false
	for _, k := range held {
		if isMovement(k) {
			m.KeyDown(k)
		}
	}
}

func isMovement(k game.Key) bool {
	switch k {
	case game.KeyW, game.KeyS, game.KeyUp, game.KeyDown:
		return true
	}
	return false
}
