package interfaces

import (
	"go-dino-defense/internal/component"
	"go-dino-defense/internal/types"
)

// AnimationState is requested from the presentation layer, never played by the core.
type AnimationState string

const (
	AnimWalk AnimationState = "Walk"
	AnimHit  AnimationState = "Hit"
	AnimDead AnimationState = "Dead"
	AnimIdle AnimationState = "Idle"
)

// Sound names passed to PlaySound.
const (
	SoundNewWave      = "NewWave"
	SoundBuildTower   = "BuildTower"
	SoundNoBuildTower = "NoBuildTower"
	SoundLifeLost     = "LifeLost"
	SoundMenu         = "Menu"
	SoundHit          = "Hit"
)

// DeathSound returns the sound played when an enemy of the given type dies.
func DeathSound(enemyType string) string {
	return enemyType + "Dead"
}

// Presentation plays animations and sounds. Fire-and-forget.
type Presentation interface {
	SetAnimationState(id types.EntityID, state AnimationState)
	PlaySound(name string)
}

// HUD shows gold, base health and the wave label.
type HUD interface {
	Update(gold, baseHealth int, waveLabel string)
}

// GameStateController owns the host-side phase screens. The core only requests transitions.
type GameStateController interface {
	Transition(phase component.GamePhase)
}
