// internal/system/utils.go
package system

import "go-dino-defense/internal/component"

// ApplyDamage наносит урон врагу. Здоровье не опускается ниже нуля,
// the removal pass picks the enemy up on the same tick.
func ApplyDamage(e *component.Enemy, damage int) {
	if damage <= 0 || e.Health <= 0 {
		return
	}
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
}
