// internal/defs/enemies.go
package defs

// EnemyType identifies an entry of the enemy catalog.
type EnemyType string

const (
	EnemyTRex        EnemyType = "TRex"
	EnemyTriceratops EnemyType = "Triceratops"
	EnemyTRexBoss    EnemyType = "TRexBoss"
)

// MovementStyle decides how an enemy follows its path.
type MovementStyle string

const (
	// MovementWaypoint moves along the path in constant-speed segments.
	MovementWaypoint MovementStyle = "waypoint"
	// MovementSteering drives a steering agent with path-following goals.
	MovementSteering MovementStyle = "steering"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Health     int           `yaml:"health"`
	Speed      float64       `yaml:"speed"`
	BaseDamage int           `yaml:"baseDamage"` // сколько жизней базы отнимает при прорыве
	GoldReward int           `yaml:"goldReward"`
	Movement   MovementStyle `yaml:"movement"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`

	// Только для MovementSteering.
	MaxAcceleration float64 `yaml:"maxAcceleration"`
	Mass            float64 `yaml:"mass"`
}

// AgentRadius is the bounding radius used by steering agents.
func (d EnemyDefinition) AgentRadius() float64 {
	return d.Width / 2
}

func defaultEnemies() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyTRex: {
			Health: 60, Speed: 100, BaseDamage: 2, GoldReward: 10,
			Movement: MovementWaypoint, Width: 203, Height: 110,
		},
		EnemyTriceratops: {
			Health: 40, Speed: 150, BaseDamage: 1, GoldReward: 5,
			Movement: MovementSteering, Width: 142, Height: 74,
			MaxAcceleration: 200, Mass: 0.1,
		},
		EnemyTRexBoss: {
			Health: 1000, Speed: 50, BaseDamage: 5, GoldReward: 50,
			Movement: MovementWaypoint, Width: 203, Height: 110,
		},
	}
}
