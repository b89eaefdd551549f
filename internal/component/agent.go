package component

import "go-dino-defense/pkg/geom"

// Goal produces a steering force for an agent.
type Goal interface {
	Force(a *Agent, dt float64) geom.Vec2
}

// WeightedGoal scales a goal's force inside a behavior.
type WeightedGoal struct {
	Goal   Goal
	Weight float64
}

// Behavior blends several goals into one steering force.
type Behavior struct {
	Goals []WeightedGoal
	Path  *geom.Polyline // путь, по которому ведут цели FollowPath/StayOnPath
}

// Agent — физическое тело steering-врага.
type Agent struct {
	Position        geom.Vec2
	Velocity        geom.Vec2
	MaxSpeed        float64
	MaxAcceleration float64
	Mass            float64
	Radius          float64
	Behavior        *Behavior // nil — агент стоит
}
