package system

import (
	"go-dino-defense/internal/component"
	"go-dino-defense/pkg/geom"
	"go-dino-defense/pkg/navgraph"
)

// TargetSpeedGoal accelerates or brakes along the current heading towards Speed.
type TargetSpeedGoal struct {
	Speed float64
}

func (g *TargetSpeedGoal) Force(a *component.Agent, dt float64) geom.Vec2 {
	speed := a.Velocity.Len()
	if speed == 0 {
		return geom.Vec2{}
	}
	return a.Velocity.Scale(1 / speed).Scale(g.Speed - speed)
}

type obstacleCircle struct {
	center geom.Vec2
	radius float64
}

// AvoidObstaclesGoal steers away from the first obstacle the agent would touch within
// the prediction horizon. Obstacles are approximated by their bounding circles.
type AvoidObstaclesGoal struct {
	circles        []obstacleCircle
	PredictionTime float64
}

func NewAvoidObstaclesGoal(obstacles []*navgraph.Obstacle, predictionTime float64) *AvoidObstaclesGoal {
	g := &AvoidObstaclesGoal{PredictionTime: predictionTime}
	for _, o := range obstacles {
		c, r := o.Polygon.BoundingCircle()
		g.circles = append(g.circles, obstacleCircle{center: c, radius: r})
	}
	return g
}

func (g *AvoidObstaclesGoal) Force(a *component.Agent, dt float64) geom.Vec2 {
	ahead := a.Position.Add(a.Velocity.Scale(g.PredictionTime))
	bestT := 2.0
	var force geom.Vec2
	for _, c := range g.circles {
		if a.Velocity.Dot(c.center.Sub(a.Position)) <= 0 {
			continue // уже удаляемся
		}
		closest, t := geom.ClosestPointOnSegment(a.Position, ahead, c.center)
		reach := c.radius + a.Radius
		dist := closest.Dist(c.center)
		if dist >= reach || t >= bestT {
			continue
		}
		bestT = t
		away := closest.Sub(c.center).Normalize()
		if away == (geom.Vec2{}) {
			away = a.Velocity.Perpendicular().Normalize()
		}
		force = away.Scale(a.MaxSpeed * (reach - dist) / reach)
	}
	return force
}

// FollowPathGoal seeks a point ahead of the agent's predicted projection on the path.
type FollowPathGoal struct {
	Path           *geom.Polyline
	PredictionTime float64
}

func (g *FollowPathGoal) Force(a *component.Agent, dt float64) geom.Vec2 {
	predicted := a.Position.Add(a.Velocity.Scale(g.PredictionTime))
	_, s, _ := g.Path.Project(predicted)
	lookAhead := a.MaxSpeed * g.PredictionTime
	if lookAhead < a.Radius {
		lookAhead = a.Radius
	}
	target := g.Path.PointAt(s + lookAhead)
	if target == a.Position {
		return a.Velocity.Scale(-1)
	}
	desired := target.Sub(a.Position).Normalize().Scale(a.MaxSpeed)
	return desired.Sub(a.Velocity)
}

// StayOnPathGoal pulls the agent back once its predicted position leaves the corridor.
type StayOnPathGoal struct {
	Path           *geom.Polyline
	Radius         float64
	PredictionTime float64
}

func (g *StayOnPathGoal) Force(a *component.Agent, dt float64) geom.Vec2 {
	predicted := a.Position.Add(a.Velocity.Scale(g.PredictionTime))
	onPath, _, dist := g.Path.Project(predicted)
	if dist <= g.Radius {
		return geom.Vec2{}
	}
	excess := (dist - g.Radius) / g.Radius
	if excess > 1 {
		excess = 1
	}
	return onPath.Sub(predicted).Normalize().Scale(a.MaxSpeed * excess)
}

// StepAgent integrates one frame of the agent's behavior: the weighted goal forces are
// summed, divided by mass and capped at MaxAcceleration, the velocity is capped at MaxSpeed.
// An agent without a behavior holds still.
func StepAgent(a *component.Agent, dt float64) {
	if a.Behavior == nil {
		a.Velocity = geom.Vec2{}
		return
	}
	var force geom.Vec2
	for _, wg := range a.Behavior.Goals {
		force = force.Add(wg.Goal.Force(a, dt).Scale(wg.Weight))
	}
	mass := a.Mass
	if mass <= 0 {
		mass = 1
	}
	accel := force.Scale(1 / mass).Truncate(a.MaxAcceleration)
	a.Velocity = a.Velocity.Add(accel.Scale(dt)).Truncate(a.MaxSpeed)
	a.Position = a.Position.Add(a.Velocity.Scale(dt))
}
