package game

// Fixed rules of a match. These are not tunable.
const (
	// WinScore ends the match as soon as either paddle reaches it.
	WinScore = 10
	// MinShotInterval is the per-paddle cooldown between shots, in seconds.
	MinShotInterval = 0.75
	// PaddleSpeed is the vertical distance a moving paddle covers per tick.
	PaddleSpeed = 10.0
	// ShotSpeed is the horizontal distance a fired ball covers per tick.
	ShotSpeed = 10.0
	// ShotOffsetX and ShotOffsetY place a new ball relative to the firing
	// paddle's centre. X is mirrored for the right paddle.
	ShotOffsetX = 55.0
	ShotOffsetY = 40.0
)

// Config holds the arena geometry. Geometry only affects layout, never the
// scoring rules above.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64

	PaddleWidth  float64
	PaddleHeight float64

	BallSize float64
}

// DefaultConfig returns the standard 800x600 arena.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:   800,
		ArenaHeight:  600,
		PaddleWidth:  25,
		PaddleHeight: 200,
		BallSize:     50,
	}
}

// normalized replaces unusable dimensions with defaults.
func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.ArenaWidth <= 0 {
		c.ArenaWidth = d.ArenaWidth
	}
	if c.ArenaHeight <= 0 {
		c.ArenaHeight = d.ArenaHeight
	}
	if c.PaddleWidth <= 0 {
		c.PaddleWidth = d.PaddleWidth
	}
	if c.PaddleHeight <= 0 {
		c.PaddleHeight = d.PaddleHeight
	}
	if c.PaddleHeight > c.ArenaHeight {
		c.PaddleHeight = c.ArenaHeight
	}
	if c.BallSize <= 0 {
		c.BallSize = d.BallSize
	}
	return c
}
