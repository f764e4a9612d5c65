package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-backdrop/internal/ambience"
	"github.com/iburimskiy/portfolio-backdrop/internal/config"
	"github.com/iburimskiy/portfolio-backdrop/internal/game"
	"github.com/iburimskiy/portfolio-backdrop/internal/resume"
)

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("backdrop: ")

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowSizeLimits(config.MinWindow, config.MinWindow, -1, -1)
	ebiten.SetWindowTitle("Portfolio")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	var amb game.Ambience
	if cfg.Audio != "" {
		player := ambience.NewPlayer()
		defer player.Close()
		if err := player.Open(cfg.Audio); err != nil {
			log.Printf("ambience disabled: %v", err)
		} else {
			amb = player
		}
	}

	g := game.NewGame(cfg, cfg.DarkMode(config.SystemDarkMode), amb, resume.New(cfg.Resume))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
