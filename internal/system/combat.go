package system

import (
	"go-dino-defense/internal/component"
	"go-dino-defense/internal/entity"
	"go-dino-defense/internal/interfaces"
)

// CombatSystem управляет атакой башен: мгновенные попадания по текущей цели.
type CombatSystem struct {
	ecs          *entity.ECS
	presentation interfaces.Presentation
	slowFactor   float64
}

func NewCombatSystem(ecs *entity.ECS, presentation interfaces.Presentation, slowFactor float64) *CombatSystem {
	return &CombatSystem{
		ecs:          ecs,
		presentation: presentation,
		slowFactor:   slowFactor,
	}
}

// Update fires every tower whose cooldown has run out at its current target.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		if tower.Cooldown > 0 {
			tower.Cooldown -= deltaTime
		}
		if tower.Target == 0 || tower.Cooldown > 0 {
			continue
		}
		enemy, ok := s.ecs.Enemies[tower.Target]
		if !ok || !enemy.IsAlive() || enemy.Health <= 0 {
			continue
		}

		ApplyDamage(enemy, tower.Def.Damage)
		if tower.Def.Slowing && !enemy.Slowed {
			SlowEnemy(enemy, s.slowFactor)
		}
		tower.Cooldown = 1 / tower.Def.FireRate

		s.presentation.SetAnimationState(tower.Target, interfaces.AnimHit)
		s.presentation.PlaySound(interfaces.SoundHit)
	}
}

// SlowEnemy marks the enemy slowed and scales its speed by factor. Slowing happens once.
func SlowEnemy(e *component.Enemy, factor float64) {
	if e.Slowed {
		return
	}
	e.Slowed = true
	e.SpeedMultiplier = factor
	if e.Agent != nil {
		e.Agent.MaxSpeed = e.Def.Speed * factor
	}
}
