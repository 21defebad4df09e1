package game

import (
	"fmt"

	"duel-pong/internal/core"
)

// State is the match's lifecycle stage.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "playing"
}

// Listener is notified when the display needs to change.
type Listener interface {
	ScoreChanged(text string)
	MatchOver(winner Side)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnScore func(text string)
	OnOver  func(winner Side)
}

// ScoreChanged calls OnScore when set.
func (l ListenerFuncs) ScoreChanged(text string) {
	if l.OnScore != nil {
		l.OnScore(text)
	}
}

// MatchOver calls OnOver when set.
func (l ListenerFuncs) MatchOver(winner Side) {
	if l.OnOver != nil {
		l.OnOver(winner)
	}
}

// Option customizes a Match.
type Option func(*Match)

// WithClock sets the time source used for the shot cooldown.
func WithClock(c core.Clock) Option {
	return func(m *Match) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithListener registers l for score and game-over notifications.
func WithListener(l Listener) Option {
	return func(m *Match) { m.listener = l }
}

// WithKeyMap overrides the key handling options.
func WithKeyMap(k KeyMap) Option {
	return func(m *Match) { m.keys = k }
}

// Match owns both paddles and every live ball and advances them one tick at
// a time. It is not safe for concurrent use; input events and ticks must be
// delivered from the same goroutine.
type Match struct {
	cfg Config

	Player1 *Paddle
	Player2 *Paddle

	balls     []Ball
	scoreText string
	state     State
	winner    Side
	ticks     uint64

	clock    core.Clock
	listener Listener
	keys     KeyMap
}

// NewMatch places both paddles at the arena edges, vertically centred.
func NewMatch(cfg Config, opts ...Option) *Match {
	cfg = cfg.normalized()
	y := (cfg.ArenaHeight - cfg.PaddleHeight) / 2
	m := &Match{
		cfg:     cfg,
		Player1: NewPaddle(SideLeft, core.Vec2{X: 0, Y: y}, cfg.PaddleWidth, cfg.PaddleHeight),
		Player2: NewPaddle(SideRight, core.Vec2{X: cfg.ArenaWidth - cfg.PaddleWidth, Y: y}, cfg.PaddleWidth, cfg.PaddleHeight),
		clock:   core.NewWallClock(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.scoreText = m.formatScore()
	return m
}

// State returns the current lifecycle stage.
func (m *Match) State() State { return m.state }

// Over reports whether the match has reached its terminal state.
func (m *Match) Over() bool { return m.state == StateGameOver }

// Winner returns the winning side, or SideNone while playing.
func (m *Match) Winner() Side { return m.winner }

// ScoreText returns the display string, right paddle first.
func (m *Match) ScoreText() string { return m.scoreText }

// Ticks returns how many ticks have been applied.
func (m *Match) Ticks() uint64 { return m.ticks }

// Balls returns a copy of the live balls.
func (m *Match) Balls() []Ball {
	return append([]Ball(nil), m.balls...)
}

// Paddle returns the paddle defending side.
func (m *Match) Paddle(side Side) *Paddle {
	switch side {
	case SideLeft:
		return m.Player1
	case SideRight:
		return m.Player2
	default:
		return nil
	}
}

// Shoot fires a ball from the given side if its cooldown allows. It reports
// whether a ball was spawned.
func (m *Match) Shoot(side Side) bool {
	if m.Over() {
		return false
	}
	p := m.Paddle(side)
	if p == nil {
		return false
	}
	b, ok := p.Shoot(m.clock.Now(), ShotSpeed, m.cfg.BallSize)
	if !ok {
		return false
	}
	m.balls = append(m.balls, b)
	return true
}

// Tick advances the match by one fixed step: paddles first, then balls and
// collisions, then the win check. A finished match is never mutated.
func (m *Match) Tick(dt float64) {
	if m.Over() {
		return
	}
	m.ticks++

	m.Player1.Update(dt, m.cfg.ArenaHeight)
	m.Player2.Update(dt, m.cfg.ArenaHeight)

	scored := false
	remaining := m.balls[:0]
	for _, b := range m.balls {
		b.Advance()
		if m.Player1.Catch(b) || m.Player2.Catch(b) {
			scored = true
			continue
		}
		if m.escaped(b) {
			continue
		}
		remaining = append(remaining, b)
	}
	for i := len(remaining); i < len(m.balls); i++ {
		m.balls[i] = Ball{}
	}
	m.balls = remaining

	if scored {
		m.UpdateScore()
	}
	m.checkWinner()
}

// UpdateScore recomputes the score text and notifies the listener.
func (m *Match) UpdateScore() {
	m.scoreText = m.formatScore()
	if m.listener != nil {
		m.listener.ScoreChanged(m.scoreText)
	}
}

// Announcement returns the win message, or "" while playing.
func (m *Match) Announcement() string {
	if !m.Over() {
		return ""
	}
	return fmt.Sprintf("%s player wins!", m.winner)
}

func (m *Match) formatScore() string {
	return fmt.Sprintf("%d : %d", m.Player2.Score, m.Player1.Score)
}

// escaped reports whether b is entirely outside the arena horizontally.
func (m *Match) escaped(b Ball) bool {
	r := b.Bounds()
	return r.Right() < 0 || r.X > m.cfg.ArenaWidth
}

// checkWinner looks at the left paddle first, so it wins a simultaneous
// threshold.
func (m *Match) checkWinner() {
	switch {
	case m.Player1.Score >= WinScore:
		m.winner = SideLeft
	case m.Player2.Score >= WinScore:
		m.winner = SideRight
	default:
		return
	}
	m.state = StateGameOver
	if m.listener != nil {
		m.listener.MatchOver(m.winner)
	}
}
