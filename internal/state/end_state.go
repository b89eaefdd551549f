// internal/state/end_state.go
package state

import (
	"go-dino-defense/internal/component"
	"go-dino-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EndState — экран победы или поражения
type EndState struct {
	session *Session
	phase   component.GamePhase
}

func NewEndState(session *Session, phase component.GamePhase) *EndState {
	return &EndState{session: session, phase: phase}
}

func (e *EndState) Enter() {}

func (e *EndState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.session.Restart()
	}
}

func (e *EndState) Draw(screen *ebiten.Image) {
	e.session.DrawWorld(screen)
	title := "YOU WIN"
	if e.phase == component.PhaseLose {
		title = "GAME OVER"
	}
	ui.DrawBanner(screen, title, "click to play again")
}

func (e *EndState) Exit() {}
