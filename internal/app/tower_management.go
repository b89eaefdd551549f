// internal/app/tower_management.go
package app

import (
	"log"

	"go-dino-defense/internal/component"
	"go-dino-defense/internal/config"
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/event"
	"go-dino-defense/internal/interfaces"
	"go-dino-defense/pkg/geom"
)

// PlaceResult reports the outcome of a tower placement.
type PlaceResult int

const (
	Placed PlaceResult = iota
	RejectedInsufficientGold
	RejectedInactive
	RejectedUnknownType
)

func (r PlaceResult) String() string {
	switch r {
	case Placed:
		return "placed"
	case RejectedInsufficientGold:
		return "insufficient gold"
	case RejectedInactive:
		return "game not active"
	case RejectedUnknownType:
		return "unknown tower type"
	}
	return "unknown"
}

// AddTower places a tower at pos. On rejection nothing changes except the failure sound.
// On success the cost is paid, the tower spot is used up, the tower's footprint becomes a
// permanent obstacle and every live enemy is re-routed.
func (g *Game) AddTower(t defs.TowerType, pos geom.Vec2) PlaceResult {
	if g.StateSystem.Current() != component.PhaseActive || g.isPaused {
		return RejectedInactive
	}
	def, ok := g.Catalog.Tower(t)
	if !ok {
		log.Printf("[Game] Error: tower definition not found for %s", t)
		return RejectedUnknownType
	}
	if g.gold < def.Cost {
		g.presentation.PlaySound(interfaces.SoundNoBuildTower)
		log.Printf("[Game] Cannot build %s tower: costs %d, have %d", t, def.Cost, g.gold)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.TowerRejected,
			Data: event.TowerRejectedData{Tower: t, Cost: def.Cost, Gold: g.gold},
		})
		return RejectedInsufficientGold
	}

	g.gold -= def.Cost
	g.updateHUD()
	g.consumeTowerSpot(pos)
	g.presentation.PlaySound(interfaces.SoundBuildTower)

	id := g.ECS.NewEntity()
	shadow := component.SpriteShadow(def.Width, def.Height)
	g.ECS.Towers[id] = &component.Tower{Type: t, Def: def, Position: pos}
	g.ECS.Shadows[id] = &shadow
	g.ECS.Renderables[id] = &component.Renderable{Width: def.Width, Height: def.Height}
	g.presentation.SetAnimationState(id, interfaces.AnimIdle)
	g.addEntity(id)

	g.Graph.AddObstacles([]geom.Polygon{shadow.Footprint(pos)})
	g.RecalculateAllPaths()

	log.Printf("[Game] Built %s tower %d at (%.0f, %.0f), gold left %d", t, id, pos.X, pos.Y, g.gold)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerPlacedData{ID: id, Tower: t, Position: pos},
	})
	return Placed
}

// RecalculateAllPaths re-routes every live enemy to the goal. Called whenever the
// obstacle graph changes.
func (g *Game) RecalculateAllPaths() {
	for _, id := range g.ECS.EnemyIDs() {
		enemy := g.ECS.Enemies[id]
		if !enemy.IsAlive() || enemy.Health <= 0 {
			continue
		}
		g.PathAssigner.Assign(id, enemy, g.goal)
	}
}

// TowerSpotAt returns the free tower spot under pos, if any.
func (g *Game) TowerSpotAt(pos geom.Vec2) (geom.Vec2, bool) {
	for _, spot := range g.towerSpots {
		if spot.Dist(pos) <= config.TowerSpotRadius {
			return spot, true
		}
	}
	return geom.Vec2{}, false
}

func (g *Game) consumeTowerSpot(pos geom.Vec2) {
	for i, spot := range g.towerSpots {
		if spot.Dist(pos) <= config.TowerSpotRadius {
			g.towerSpots = append(g.towerSpots[:i], g.towerSpots[i+1:]...)
			return
		}
	}
}
