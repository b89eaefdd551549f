// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-dino-defense/internal/config"
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/interfaces"
	"go-dino-defense/internal/state"
	"go-dino-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// logPresentation пишет запросы анимаций и звуков в лог вместо проигрывания.
type logPresentation struct {
	verbose bool
}

func (p logPresentation) SetAnimationState(id types.EntityID, anim interfaces.AnimationState) {
	if p.verbose {
		log.Printf("[Presentation] entity %d -> %s", id, anim)
	}
}

func (p logPresentation) PlaySound(name string) {
	log.Printf("[Presentation] sound %s", name)
}

func main() {
	settingsPath := flag.String("settings", "", "path to a YAML settings file")
	catalogPath := flag.String("catalog", "", "path to a YAML catalog overriding enemies, towers, waves and level")
	verbose := flag.Bool("v", false, "log animation requests")
	flag.Parse()

	settings := config.DefaultSettings()
	if *settingsPath != "" {
		var err error
		if settings, err = config.LoadSettings(*settingsPath); err != nil {
			log.Fatal(err)
		}
	}

	catalog := defs.DefaultCatalog()
	if *catalogPath != "" {
		var err error
		if catalog, err = defs.LoadCatalog(*catalogPath); err != nil {
			log.Fatal(err)
		}
	}

	sm := state.NewStateMachine()
	session, err := state.NewSession(sm, settings, catalog, logPresentation{verbose: *verbose})
	if err != nil {
		log.Fatal(err)
	}
	sm.SetState(state.NewMenuState(session))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Dino Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
