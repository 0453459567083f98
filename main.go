package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/game"
)

func main() {
	scene := config.Default(config.Rebound)
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			fatal(err)
		}
		scene = loaded
	}

	g, err := game.NewGame(scene)
	if err != nil {
		fatal(err)
	}
	if err := g.EnableSound(); err != nil {
		// Non-fatal, the balls bounce in silence
		log.Printf("audio disabled: %v", err)
	}

	ebiten.SetWindowSize(scene.Width, scene.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

func fatal(err error) {
	log.Printf("fatal: %v", err)
	game.ShowFatal(err)
	os.Exit(1)
}
