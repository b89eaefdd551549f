package system

import (
	"sort"

	"go-dino-defense/internal/entity"
)

// RenderOrderSystem assigns draw depths: lower on screen means closer to the viewer.
type RenderOrderSystem struct {
	ecs    *entity.ECS
	zDelta float64
}

func NewRenderOrderSystem(ecs *entity.ECS, zDelta float64) *RenderOrderSystem {
	return &RenderOrderSystem{ecs: ecs, zDelta: zDelta}
}

// Update sorts renderables by descending y, stable over ascending IDs, and gives the
// i-th entity depth zDelta*(i+1).
func (s *RenderOrderSystem) Update() {
	ids := s.ecs.RenderableIDs()
	sort.SliceStable(ids, func(i, j int) bool {
		pi, _ := s.ecs.Position(ids[i])
		pj, _ := s.ecs.Position(ids[j])
		return pi.Y > pj.Y
	})
	for i, id := range ids {
		s.ecs.Renderables[id].Depth = s.zDelta * float64(i+1)
	}
}
