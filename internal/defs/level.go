// internal/defs/level.go
package defs

import "go-dino-defense/pkg/geom"

// SceneryDefinition is a static obstacle sprite placed on the map.
type SceneryDefinition struct {
	Name     string    `yaml:"name"`
	Position geom.Vec2 `yaml:"position"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
}

// Level describes the static layout of the map.
type Level struct {
	Scenery    []SceneryDefinition `yaml:"scenery"`
	TowerSpots []geom.Vec2         `yaml:"towerSpots"`
}

// DefaultLevel returns the built-in map: trees and rocks around a meadow,
// with tower spots along the dinosaurs' route.
func DefaultLevel() Level {
	return Level{
		Scenery: []SceneryDefinition{
			{Name: "Tree1", Position: geom.V(180, 620), Width: 160, Height: 180},
			{Name: "Tree2", Position: geom.V(460, 140), Width: 160, Height: 180},
			{Name: "Rock1", Position: geom.V(520, 560), Width: 120, Height: 80},
			{Name: "Tree3", Position: geom.V(820, 660), Width: 160, Height: 180},
			{Name: "Rock2", Position: geom.V(860, 200), Width: 120, Height: 80},
		},
		TowerSpots: []geom.Vec2{
			geom.V(300, 470),
			geom.V(340, 250),
			geom.V(600, 400),
			geom.V(700, 560),
			geom.V(720, 250),
			geom.V(960, 430),
		},
	}
}
