//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"duel-pong/internal/app"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
