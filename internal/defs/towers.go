// internal/defs/towers.go
package defs

import "go-dino-defense/internal/config"

// TowerType identifies an entry of the tower catalog.
type TowerType string

const (
	TowerWood TowerType = "Wood"
	TowerRock TowerType = "Rock"
)

// TowerTypes lists the tower types in selector order.
var TowerTypes = []TowerType{TowerWood, TowerRock}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Cost     int     `yaml:"cost"`
	Range    float64 `yaml:"range"`
	FireRate float64 `yaml:"fireRate"` // выстрелов в секунду
	Damage   int     `yaml:"damage"`
	Slowing  bool    `yaml:"slowing"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
}

func defaultTowers() map[TowerType]TowerDefinition {
	return map[TowerType]TowerDefinition{
		TowerWood: {
			Cost: 50, Range: 200, FireRate: 1.0, Damage: 20, Slowing: true,
			Width: config.TowerSpriteWidth, Height: config.TowerSpriteHeight,
		},
		TowerRock: {
			Cost: 80, Range: 250, FireRate: 1.5, Damage: 50,
			Width: config.TowerSpriteWidth, Height: config.TowerSpriteHeight,
		},
	}
}
