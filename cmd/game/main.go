// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	game "go-sphere-rhythm/internal/app"
	"go-sphere-rhythm/internal/assets"
	"go-sphere-rhythm/internal/config"
	"go-sphere-rhythm/internal/defs"
	"go-sphere-rhythm/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type App struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var (
		mode       = flag.String("mode", "coverage", "gameplay mode: coverage or hold")
		difficulty = flag.String("difficulty", "normal", "difficulty preset id")
		seed       = flag.Int64("seed", 0, "PRNG seed, 0 — random")
		widthsPath = flag.String("widths", "", "optional width class JSON override")
	)
	flag.Parse()

	if *widthsPath != "" {
		if err := defs.LoadWidthClasses(*widthsPath); err != nil {
			log.Fatal(err)
		}
	}

	gameMode := defs.ModeCoverage
	if *mode == "hold" {
		gameMode = defs.ModeHold
	}

	face, err := assets.LoadFontFace(18)
	if err != nil {
		log.Fatal(err)
	}

	g := game.NewGame(gameMode, *difficulty, *seed, face)
	defer g.Dispose()

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, g))

	app := &App{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sphere Rhythm")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
