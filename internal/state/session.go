// internal/state/session.go
package state

import (
	"fmt"
	"log"

	game "go-dino-defense/internal/app"
	"go-dino-defense/internal/component"
	"go-dino-defense/internal/config"
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/interfaces"
	"go-dino-defense/internal/ui"
	"go-dino-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Session связывает одну партию с её экранами. It is the GameStateController of its game:
// phase changes requested by the simulation switch the visible screen.
type Session struct {
	sm           *StateMachine
	settings     config.Settings
	catalog      *defs.Catalog
	presentation interfaces.Presentation

	Game        *game.Game
	HUD         *ui.HUD
	Renderer    *render.WorldRenderer
	Selector    *ui.TowerSelector
	PauseButton *ui.PauseButton
}

func NewSession(sm *StateMachine, settings config.Settings, catalog *defs.Catalog, presentation interfaces.Presentation) (*Session, error) {
	s := &Session{
		sm:           sm,
		settings:     settings,
		catalog:      catalog,
		presentation: presentation,
		HUD:          ui.NewHUD(20, 30),
		Renderer:     render.NewWorldRenderer(config.ScreenWidth, config.ScreenHeight),
		Selector:     ui.NewTowerSelector(catalog),
		PauseButton:  ui.NewPauseButton(config.ScreenWidth-40, 40, 22, config.TextLightColor, config.TextLightColor),
	}
	g, err := game.NewGame(settings, catalog, presentation, s.HUD, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create game session: %w", err)
	}
	s.Game = g
	return s, nil
}

// Transition implements interfaces.GameStateController.
func (s *Session) Transition(phase component.GamePhase) {
	switch phase {
	case component.PhaseActive:
		s.sm.SetState(NewGameState(s))
	case component.PhaseWin, component.PhaseLose:
		s.Selector.Close()
		s.sm.SetState(NewEndState(s, phase))
	}
}

// Restart начинает новую партию с теми же настройками.
func (s *Session) Restart() {
	next, err := NewSession(s.sm, s.settings, s.catalog, s.presentation)
	if err != nil {
		log.Printf("[Session] Restart failed: %v", err)
		return
	}
	s.sm.SetState(NewMenuState(next))
}

// DrawWorld рисует карту, сущности и HUD без экранных оверлеев.
func (s *Session) DrawWorld(screen *ebiten.Image) {
	s.Renderer.Draw(screen, s.Game.ECS, s.Game.TowerSpots(), s.Game.Graph)
	s.HUD.Draw(screen)
	s.Selector.Draw(screen, s.Game.Gold())
	s.PauseButton.Draw(screen)
}
