package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/memory-drift/game"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	store := game.NewFileStore(cfg.SaveDir)
	engine := game.NewEngine(float64(cfg.Width), float64(cfg.Height), store, rng)

	engine.Subscribe(game.EventLevelStarted, func(ev game.Event) {
		log.Printf("level %d started", ev.Level+1)
	})
	engine.Subscribe(game.EventLevelComplete, func(ev game.Event) {
		log.Printf("level %d complete", ev.Level+1)
	})

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Memory Drift")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewApp(cfg, engine, seed)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
