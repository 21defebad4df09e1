//go:build ebiten

package app

import (
	"log"

	"duel-pong/internal/game"
	"duel-pong/internal/render"
	"duel-pong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// bindings maps physical keys to the match's logical keys.
var bindings = []struct {
	physical ebiten.Key
	logical  game.Key
}{
	{ebiten.KeyW, game.KeyW},
	{ebiten.KeyS, game.KeyS},
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyArrowDown, game.KeyDown},
	{ebiten.KeySpace, game.KeySpace},
	{ebiten.KeyEnter, game.KeyEnter},
	{ebiten.KeyNumpadEnter, game.KeyEnter},
}

// Game adapts a match to the ebiten.Game interface. ebiten calls Update and
// Draw from one goroutine, so the match needs no locking.
type Game struct {
	cfg     *Config
	match   *game.Match
	painter *render.Painter
	hud     *ui.HUD
	popup   *ui.Popup
	overlay *ui.Overlay

	dt       float64
	controls controls
}

// New constructs a Game and starts its first match.
func New(cfg *Config) (*Game, error) {
	palette := render.DefaultPalette()
	hud, err := ui.NewHUD(palette.Text)
	if err != nil {
		return nil, err
	}
	popup, err := ui.NewPopup(palette.Popup, palette.Text)
	if err != nil {
		return nil, err
	}
	view := render.NewViewport(cfg.Arena.Width, cfg.Arena.Height, cfg.Scale)
	painter := render.NewPainter(view, palette)
	g := &Game{
		cfg:     cfg,
		painter: painter,
		hud:     hud,
		popup:   popup,
		overlay: ui.NewOverlay(painter, cfg.Debug),
		dt:      1 / float64(cfg.TPS),
	}
	g.Reset()
	return g, nil
}

// Reset discards the current match and starts a new one.
func (g *Game) Reset() {
	g.popup.Show("")
	g.controls = controls{}
	g.match = game.NewMatch(g.cfg.GameConfig(),
		game.WithKeyMap(g.cfg.KeyMap()),
		game.WithListener(game.ListenerFuncs{
			OnScore: g.hud.ScoreChanged,
			OnOver:  g.matchOver,
		}),
	)
	g.hud.Sync(g.match.Snapshot())
}

func (g *Game) matchOver(winner game.Side) {
	log.Printf("match over after %d ticks: %s wins (%s)", g.match.Ticks(), winner, g.match.ScoreText())
	g.popup.Show(g.match.Announcement())
}

// Update polls input and advances the match by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.controls.togglePause(g.match, heldKeys())
	}
	g.overlay.Update()
	if g.controls.paused {
		return nil
	}

	g.controls.apply(g.match, frameEdges())
	g.match.Tick(g.dt)
	return nil
}

func frameEdges() keyEdges {
	var e keyEdges
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.physical) {
			e.pressed = append(e.pressed, b.logical)
		}
		if inpututil.IsKeyJustReleased(b.physical) {
			e.released = append(e.released, b.logical)
		}
	}
	return e
}

func heldKeys() []game.Key {
	var held []game.Key
	for _, b := range bindings {
		if ebiten.IsKeyPressed(b.physical) {
			held = append(held, b.logical)
		}
	}
	return held
}

// Draw renders the current match state.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.match.Snapshot()
	g.painter.Draw(screen, s)
	g.overlay.Draw(screen, s)
	g.hud.Draw(screen, g.controls.paused)
	g.popup.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Viewport().ScreenSize()
}
