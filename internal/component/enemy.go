package component

import (
	"go-dino-defense/internal/defs"
	"go-dino-defense/pkg/geom"
)

// EnemyStatus — жизненный цикл врага.
type EnemyStatus int

const (
	EnemyAlive EnemyStatus = iota
	EnemyDead
	EnemyEscaped
)

func (s EnemyStatus) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyDead:
		return "dead"
	case EnemyEscaped:
		return "escaped"
	}
	return "unknown"
}

// Enemy представляет вражескую сущность.
// Exactly one of Plan and Agent drives it, depending on Def.Movement.
type Enemy struct {
	Type     defs.EnemyType
	Def      defs.EnemyDefinition
	Health   int
	Position geom.Vec2
	Status   EnemyStatus

	Plan  *WaypointPlan // nil — стоит на месте
	Agent *Agent        // только для steering-врагов

	Slowed          bool
	SpeedMultiplier float64 // 1, или slowFactor после замедления
}

// NewEnemy creates a live enemy of the given type at pos.
func NewEnemy(t defs.EnemyType, def defs.EnemyDefinition, pos geom.Vec2) *Enemy {
	e := &Enemy{
		Type:            t,
		Def:             def,
		Health:          def.Health,
		Position:        pos,
		SpeedMultiplier: 1,
	}
	if def.Movement == defs.MovementSteering {
		e.Agent = &Agent{
			Position:        pos,
			MaxSpeed:        def.Speed,
			MaxAcceleration: def.MaxAcceleration,
			Mass:            def.Mass,
			Radius:          def.AgentRadius(),
		}
	}
	return e
}

// IsAlive reports whether the enemy still takes part in the simulation.
func (e *Enemy) IsAlive() bool {
	return e.Status == EnemyAlive
}
