package game

// Key is a logical key identifier delivered by the input shell.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
)

var keyNames = map[Key]string{
	KeyW:     "w",
	KeyS:     "s",
	KeyUp:    "up",
	KeyDown:  "down",
	KeySpace: "spacebar",
	KeyEnter: "enter",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyMap controls how key events become paddle commands.
type KeyMap struct {
	// RefireOnRelease makes releasing a shoot key fire again, the way the
	// original keyboard handler behaved. Off by default.
	RefireOnRelease bool
}

// KeyDown applies a key press. Movement is level-triggered: the paddle keeps
// moving until the matching KeyUp. Unknown keys are ignored.
func (m *Match) KeyDown(k Key) {
	if m.Over() {
		return
	}
	switch k {
	case KeyW:
		m.Player1.MoveUp()
	case KeyS:
		m.Player1.MoveDown()
	case KeyUp:
		m.Player2.MoveUp()
	case KeyDown:
		m.Player2.MoveDown()
	case KeySpace:
		m.Shoot(SideLeft)
	case KeyEnter:
		m.Shoot(SideRight)
	}
}

// KeyUp applies a key release.
func (m *Match) KeyUp(k Key) {
	if m.Over() {
		return
	}
	switch k {
	case KeyW, KeyS:
		m.Player1.Stop()
	case KeyUp, KeyDown:
		m.Player2.Stop()
	case KeySpace:
		if m.keys.RefireOnRelease {
			m.Shoot(SideLeft)
		}
	case KeyEnter:
		if m.keys.RefireOnRelease {
			m.Shoot(SideRight)
		}
	}
}
