package geom

// Polyline is an open path through ordered points.
type Polyline struct {
	Points []Vec2
	// cumulative arc length at each point
	lengths []float64
}

// NewPolyline copies the points and precomputes arc lengths.
func NewPolyline(points []Vec2) *Polyline {
	pl := &Polyline{
		Points:  make([]Vec2, len(points)),
		lengths: make([]float64, len(points)),
	}
	copy(pl.Points, points)
	for i := 1; i < len(pl.Points); i++ {
		pl.lengths[i] = pl.lengths[i-1] + pl.Points[i-1].Dist(pl.Points[i])
	}
	return pl
}

// Length returns the total arc length.
func (pl *Polyline) Length() float64 {
	if len(pl.lengths) == 0 {
		return 0
	}
	return pl.lengths[len(pl.lengths)-1]
}

// PointAt returns the point at arc length s, clamped to the ends.
func (pl *Polyline) PointAt(s float64) Vec2 {
	if len(pl.Points) == 0 {
		return Vec2{}
	}
	if s <= 0 {
		return pl.Points[0]
	}
	for i := 1; i < len(pl.Points); i++ {
		if s <= pl.lengths[i] {
			segLen := pl.lengths[i] - pl.lengths[i-1]
			if segLen == 0 {
				return pl.Points[i]
			}
			return Lerp(pl.Points[i-1], pl.Points[i], (s-pl.lengths[i-1])/segLen)
		}
	}
	return pl.Points[len(pl.Points)-1]
}

// Project finds the closest point on the polyline to p.
// Returns the point, its arc length and the distance from p.
func (pl *Polyline) Project(p Vec2) (Vec2, float64, float64) {
	if len(pl.Points) == 0 {
		return Vec2{}, 0, 0
	}
	if len(pl.Points) == 1 {
		return pl.Points[0], 0, p.Dist(pl.Points[0])
	}
	best := pl.Points[0]
	bestS := 0.0
	bestDist := p.Dist(best)
	for i := 1; i < len(pl.Points); i++ {
		q, t := ClosestPointOnSegment(pl.Points[i-1], pl.Points[i], p)
		if d := p.Dist(q); d < bestDist {
			best = q
			bestDist = d
			bestS = pl.lengths[i-1] + t*(pl.lengths[i]-pl.lengths[i-1])
		}
	}
	return best, bestS, bestDist
}
