// component/movement.go
package component

import "go-dino-defense/pkg/geom"

// Segment — один отрезок пути с постоянной скоростью.
type Segment struct {
	From, To geom.Vec2
	Duration float64 // секунды при базовой скорости
}

// WaypointPlan — расписание движения по точкам пути.
type WaypointPlan struct {
	Segments []Segment
	Current  int     // индекс текущего отрезка
	Elapsed  float64 // время внутри текущего отрезка
}

// Done reports whether every segment has been traversed.
func (p *WaypointPlan) Done() bool {
	return p.Current >= len(p.Segments)
}

// Waypoints returns the end points of the remaining segments.
func (p *WaypointPlan) Waypoints() []geom.Vec2 {
	var out []geom.Vec2
	for i := p.Current; i < len(p.Segments); i++ {
		out = append(out, p.Segments[i].To)
	}
	return out
}
