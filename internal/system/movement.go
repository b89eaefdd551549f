// internal/system/movement.go
package system

import (
	"go-dino-defense/internal/component"
	"go-dino-defense/internal/entity"
	"go-dino-defense/pkg/geom"
)

// MovementSystem обновляет позиции врагов
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

// Update moves waypoint enemies along their plans and steps steering agents.
// Steering runs in two phases: the enemy position is copied into its agent, the agent is
// integrated, then the agent position is written back.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		e := s.ecs.Enemies[id]
		if !e.IsAlive() {
			continue
		}
		if e.Agent != nil {
			e.Agent.Position = e.Position
			StepAgent(e.Agent, deltaTime)
			e.Position = e.Agent.Position
			continue
		}
		if e.Plan != nil {
			e.Position = AdvancePlan(e.Plan, e.Position, deltaTime*e.SpeedMultiplier)
		}
	}
}

// AdvancePlan moves along the plan for dt seconds and returns the new position.
// Leftover time at the end of a segment carries into the next one.
func AdvancePlan(plan *component.WaypointPlan, pos geom.Vec2, dt float64) geom.Vec2 {
	for dt > 0 && !plan.Done() {
		seg := plan.Segments[plan.Current]
		left := seg.Duration - plan.Elapsed
		if dt < left {
			plan.Elapsed += dt
			return geom.Lerp(seg.From, seg.To, plan.Elapsed/seg.Duration)
		}
		dt -= left
		pos = seg.To
		plan.Current++
		plan.Elapsed = 0
	}
	return pos
}
