// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-dino-defense/internal/component"
	"go-dino-defense/internal/types"
	"go-dino-defense/pkg/geom"
)

// ECS is the live-entity set. Each kind of data sits in its own map keyed by EntityID.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Scenery     map[types.EntityID]*component.Scenery
	Shadows     map[types.EntityID]*component.Shadow
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Scenery:     make(map[types.EntityID]*component.Scenery),
		Shadows:     make(map[types.EntityID]*component.Shadow),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity deletes every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Scenery, id)
	delete(ecs.Shadows, id)
	delete(ecs.Renderables, id)
}

// Contains reports whether id is a live entity of any kind.
func (ecs *ECS) Contains(id types.EntityID) bool {
	if _, ok := ecs.Enemies[id]; ok {
		return true
	}
	if _, ok := ecs.Towers[id]; ok {
		return true
	}
	_, ok := ecs.Scenery[id]
	return ok
}

// Len returns the number of live entities.
func (ecs *ECS) Len() int {
	return len(ecs.Enemies) + len(ecs.Towers) + len(ecs.Scenery)
}

// Position returns the world position of an entity.
func (ecs *ECS) Position(id types.EntityID) (geom.Vec2, bool) {
	if e, ok := ecs.Enemies[id]; ok {
		return e.Position, true
	}
	if t, ok := ecs.Towers[id]; ok {
		return t.Position, true
	}
	if s, ok := ecs.Scenery[id]; ok {
		return s.Position, true
	}
	return geom.Vec2{}, false
}

// EnemyIDs returns the live enemies in ascending ID order.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

// TowerIDs returns the towers in ascending ID order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

// RenderableIDs returns every entity with a renderable in ascending ID order.
func (ecs *ECS) RenderableIDs() []types.EntityID {
	return sortedKeys(ecs.Renderables)
}

func sortedKeys[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
