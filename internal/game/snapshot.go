package game

import "duel-pong/internal/core"

// PaddleView is the render-facing state of one paddle.
type PaddleView struct {
	Side   Side
	Bounds core.Rect
	Score  uint32
	// Ready is true when the paddle could fire right now.
	Ready bool
}

// Snapshot captures everything the shell needs to draw a frame. It shares no
// memory with the match.
type Snapshot struct {
	Arena        core.Rect
	Player1      PaddleView
	Player2      PaddleView
	Balls        []core.Rect
	ScoreText    string
	State        State
	Winner       Side
	Announcement string
	Tick         uint64
}

// Snapshot returns the current render output.
func (m *Match) Snapshot() Snapshot {
	now := m.clock.Now()
	s := Snapshot{
		Arena:        core.Rect{W: m.cfg.ArenaWidth, H: m.cfg.ArenaHeight},
		Player1:      viewOf(m.Player1, now),
		Player2:      viewOf(m.Player2, now),
		Balls:        make([]core.Rect, 0, len(m.balls)),
		ScoreText:    m.scoreText,
		State:        m.state,
		Winner:       m.winner,
		Announcement: m.Announcement(),
		Tick:         m.ticks,
	}
	for _, b := range m.balls {
		s.Balls = append(s.Balls, b.Bounds())
	}
	return s
}

func viewOf(p *Paddle, now float64) PaddleView {
	return PaddleView{
		Side:   p.Side,
		Bounds: p.Bounds(),
		Score:  p.Score,
		Ready:  p.Ready(now),
	}
}
