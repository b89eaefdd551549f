package component

import "go-dino-defense/pkg/geom"

// Scenery is a static map decoration that blocks movement.
type Scenery struct {
	Name     string
	Position geom.Vec2
}
