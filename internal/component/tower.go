// component/tower.go
package component

import (
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/types"
	"go-dino-defense/pkg/geom"
)

type Tower struct {
	Type     defs.TowerType
	Def      defs.TowerDefinition
	Position geom.Vec2
	Target   types.EntityID // 0 — нет цели, пересчитывается каждый тик
	Cooldown float64        // секунды до следующего выстрела
}
