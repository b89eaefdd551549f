package system

import (
	"log"

	"go-dino-defense/internal/component"
	"go-dino-defense/internal/defs"
	"go-dino-defense/internal/types"
	"go-dino-defense/pkg/geom"
	"go-dino-defense/pkg/navgraph"
)

// Weights of the steering goals that make up a path behavior.
const (
	targetSpeedWeight    = 0.5
	avoidObstaclesWeight = 1.0
	followPathWeight     = 1.0
	stayOnPathWeight     = 1.0
)

// PathAssigner turns shortest paths from the obstacle graph into movement plans.
type PathAssigner struct {
	graph          *navgraph.ObstacleGraph
	pathRadius     float64
	predictionTime float64
}

func NewPathAssigner(graph *navgraph.ObstacleGraph, pathRadius, predictionTime float64) *PathAssigner {
	return &PathAssigner{
		graph:          graph,
		pathRadius:     pathRadius,
		predictionTime: predictionTime,
	}
}

// Assign routes the enemy from its current position to goal, replacing its previous plan.
// Returns false when no route exists. The previous plan is then kept untouched.
func (a *PathAssigner) Assign(id types.EntityID, e *component.Enemy, goal geom.Vec2) bool {
	path := a.graph.FindPath(e.Position, goal)
	if path == nil {
		log.Printf("[PathAssigner] No path for enemy %d (%s) from (%.0f, %.0f)", id, e.Type, e.Position.X, e.Position.Y)
		return false
	}
	path = compactPath(path)

	switch e.Def.Movement {
	case defs.MovementWaypoint:
		e.Plan = NewWaypointPlan(path, e.Def.Speed)
	case defs.MovementSteering:
		if e.Agent != nil && len(path) > 1 {
			e.Agent.Behavior = NewPathBehavior(e.Agent, path, a.pathRadius, a.graph.Obstacles(), a.predictionTime)
		}
	}
	return true
}

// NewWaypointPlan builds constant-speed segments between consecutive waypoints.
// Zero-length segments are dropped.
func NewWaypointPlan(path []geom.Vec2, speed float64) *component.WaypointPlan {
	plan := &component.WaypointPlan{}
	if len(path) == 0 || speed <= 0 {
		return plan
	}
	last := path[0]
	for _, p := range path[1:] {
		dist := last.Dist(p)
		if dist == 0 {
			continue
		}
		plan.Segments = append(plan.Segments, component.Segment{
			From:     last,
			To:       p,
			Duration: dist / speed,
		})
		last = p
	}
	return plan
}

// NewPathBehavior blends reaching the agent's current max speed, avoiding the obstacles,
// following the path forward and staying within radius of it.
func NewPathBehavior(agent *component.Agent, path []geom.Vec2, radius float64, obstacles []*navgraph.Obstacle, predictionTime float64) *component.Behavior {
	line := geom.NewPolyline(path)
	return &component.Behavior{
		Path: line,
		Goals: []component.WeightedGoal{
			{Goal: &TargetSpeedGoal{Speed: agent.MaxSpeed}, Weight: targetSpeedWeight},
			{Goal: NewAvoidObstaclesGoal(obstacles, predictionTime), Weight: avoidObstaclesWeight},
			{Goal: &FollowPathGoal{Path: line, PredictionTime: predictionTime}, Weight: followPathWeight},
			{Goal: &StayOnPathGoal{Path: line, Radius: radius, PredictionTime: predictionTime}, Weight: stayOnPathWeight},
		},
	}
}

// compactPath drops consecutive duplicate waypoints, e.g. when the query starts at the goal.
func compactPath(path []geom.Vec2) []geom.Vec2 {
	out := path[:1]
	for _, p := range path[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// StopEnemy cancels every movement of the enemy.
func StopEnemy(e *component.Enemy) {
	e.Plan = nil
	if e.Agent != nil {
		e.Agent.Behavior = nil
		e.Agent.Velocity = geom.Vec2{}
	}
}
