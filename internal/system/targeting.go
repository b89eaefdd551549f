package system

import (
	"go-dino-defense/internal/component"
	"go-dino-defense/internal/entity"
	"go-dino-defense/internal/types"
)

// TargetingSystem picks a target for every tower once per tick.
type TargetingSystem struct {
	ecs *entity.ECS
}

func NewTargetingSystem(ecs *entity.ECS) *TargetingSystem {
	return &TargetingSystem{ecs: ecs}
}

// Update overwrites every tower's target from the current live enemies.
// A tower with nothing in range ends up with no target.
func (s *TargetingSystem) Update() {
	enemyIDs := s.ecs.EnemyIDs()
	for _, towerID := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[towerID]
		tower.Target = SelectTarget(tower, enemyIDs, s.ecs.Enemies)
	}
}

// SelectTarget returns the preferred in-range enemy for the tower, or 0.
// Slowing towers prefer enemies that are not slowed yet. Otherwise the enemy furthest
// along the route (greatest x) wins, then the lower ID, so scan order does not matter.
func SelectTarget(tower *component.Tower, ids []types.EntityID, enemies map[types.EntityID]*component.Enemy) types.EntityID {
	var best types.EntityID
	var bestEnemy *component.Enemy
	for _, id := range ids {
		e, ok := enemies[id]
		if !ok || !e.IsAlive() {
			continue
		}
		if tower.Position.Dist(e.Position) > tower.Def.Range {
			continue
		}
		if bestEnemy == nil || preferTarget(tower, id, e, best, bestEnemy) {
			best, bestEnemy = id, e
		}
	}
	return best
}

// preferTarget reports whether candidate a beats the current choice b.
func preferTarget(tower *component.Tower, aID types.EntityID, a *component.Enemy, bID types.EntityID, b *component.Enemy) bool {
	if tower.Def.Slowing && a.Slowed != b.Slowed {
		return !a.Slowed
	}
	if a.Position.X != b.Position.X {
		return a.Position.X > b.Position.X
	}
	return aID < bID
}
