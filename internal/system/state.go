// internal/system/state.go
package system

import (
	"log"

	"go-dino-defense/internal/component"
	"go-dino-defense/internal/interfaces"
)

// StateSystem tracks the game phase and forwards transition requests to the host.
// Ready → Active → Win | Lose. Win and Lose are final.
type StateSystem struct {
	phase      component.GamePhase
	controller interfaces.GameStateController
}

func NewStateSystem(controller interfaces.GameStateController) *StateSystem {
	return &StateSystem{phase: component.PhaseReady, controller: controller}
}

func (s *StateSystem) Current() component.GamePhase {
	return s.phase
}

// SwitchTo requests a transition. Returns false when it is not allowed from the current phase.
func (s *StateSystem) SwitchTo(phase component.GamePhase) bool {
	allowed := false
	switch phase {
	case component.PhaseActive:
		allowed = s.phase == component.PhaseReady
	case component.PhaseWin, component.PhaseLose:
		allowed = s.phase == component.PhaseActive
	}
	if !allowed {
		return false
	}
	log.Printf("[StateSystem] %s -> %s", s.phase, phase)
	s.phase = phase
	s.controller.Transition(phase)
	return true
}
