// internal/state/pause_state.go
package state

import (
	"go-dino-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	session := s.previousState.session
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || session.PauseButton.IsClicked(x, y)
	}

	if unpause {
		session.Game.Resume()
		s.stateMachine.SetState(s.previousState)
		return
	}
	// На паузе двигаются только часы волн, и то лишь при политике catchUp.
	session.Game.Update(deltaTime)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	ui.DrawBanner(screen, "PAUSED", "press P to resume")
}

func (s *PauseState) Exit() {}
