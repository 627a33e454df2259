package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/tonegrid/internal/config"
	game_log "github.com/ingyamilmolinar/tonegrid/internal/log"
	"github.com/ingyamilmolinar/tonegrid/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	pattern := flag.String("pattern", "", "share code to load at startup")
	debug := flag.Bool("debug", false, "draw the particle layer and HUD")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.DebugParticles = true
	}

	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel))
	g := ui.New(cfg, logger)
	if *pattern != "" {
		if err := g.LoadShareCode(*pattern); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Tonegrid")

	err = ebiten.RunGame(g)
	g.Dispose()
	if err != nil {
		log.Fatal(err)
	}
}
