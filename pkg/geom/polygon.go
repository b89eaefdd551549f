package geom

import "math"

// epsilon used for interior tests, in world units.
const epsilon = 1e-7

// maxMiterScale caps the vertex offset for very sharp corners (in multiples of the radius).
const maxMiterScale = 4.0

// Polygon is a closed convex polygon. The last vertex connects back to the first.
type Polygon []Vec2

// Diamond returns the four-point polygon through the left, bottom, right and top
// extremes of an ellipse of size w×h centred at c.
func Diamond(c Vec2, w, h float64) Polygon {
	return Polygon{
		{c.X - w/2, c.Y},
		{c.X, c.Y - h/2},
		{c.X + w/2, c.Y},
		{c.X, c.Y + h/2},
	}
}

// SignedArea is positive for counter-clockwise winding.
func (p Polygon) SignedArea() float64 {
	var area float64
	for i := range p {
		j := (i + 1) % len(p)
		area += p[i].Cross(p[j])
	}
	return area / 2
}

// CCW returns a counter-clockwise copy of the polygon.
func (p Polygon) CCW() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	if out.SignedArea() < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Centroid returns the average of the vertices.
func (p Polygon) Centroid() Vec2 {
	if len(p) == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, v := range p {
		c = c.Add(v)
	}
	return c.Scale(1 / float64(len(p)))
}

// BoundingCircle returns the vertex centroid and the distance to the furthest vertex.
func (p Polygon) BoundingCircle() (Vec2, float64) {
	c := p.Centroid()
	var r float64
	for _, v := range p {
		r = math.Max(r, c.Dist(v))
	}
	return c, r
}

// Offset pushes every edge of a convex counter-clockwise polygon outwards by r.
// Vertices are moved along the mitre so that each edge ends up exactly r away.
func (p Polygon) Offset(r float64) Polygon {
	n := len(p)
	out := make(Polygon, n)
	if n < 3 || r == 0 {
		copy(out, p)
		return out
	}
	for i := range p {
		prev := p[(i+n-1)%n]
		next := p[(i+1)%n]
		n1 := outwardNormal(prev, p[i])
		n2 := outwardNormal(p[i], next)
		denom := 1 + n1.Dot(n2)
		var shift Vec2
		if denom < 2/(maxMiterScale*maxMiterScale) {
			shift = n1.Add(n2).Normalize().Scale(r * maxMiterScale)
		} else {
			shift = n1.Add(n2).Scale(r / denom)
		}
		out[i] = p[i].Add(shift)
	}
	return out
}

// Contains reports whether pt lies strictly inside a convex counter-clockwise polygon.
// Points on the boundary are outside.
func (p Polygon) Contains(pt Vec2) bool {
	if len(p) < 3 {
		return false
	}
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		if b.Sub(a).Cross(pt.Sub(a)) <= epsilon*b.Sub(a).Len() {
			return false
		}
	}
	return true
}

// SegmentCrossesInterior reports whether segment ab passes through the interior of a
// convex counter-clockwise polygon. Touching a vertex or running along an edge does not count.
// Cyrus–Beck clipping against a slightly shrunk polygon.
func (p Polygon) SegmentCrossesInterior(a, b Vec2) bool {
	if len(p) < 3 {
		return false
	}
	d := b.Sub(a)
	tEnter, tLeave := 0.0, 1.0
	for i := range p {
		e0, e1 := p[i], p[(i+1)%len(p)]
		edge := e1.Sub(e0)
		inward := edge.Perpendicular().Normalize()
		num := inward.Dot(a.Sub(e0)) - epsilon
		den := inward.Dot(d)
		if math.Abs(den) < 1e-12 {
			if num <= 0 {
				return false
			}
			continue
		}
		t := -num / den
		if den > 0 {
			tEnter = math.Max(tEnter, t)
		} else {
			tLeave = math.Min(tLeave, t)
		}
		if tEnter >= tLeave {
			return false
		}
	}
	return tEnter < tLeave
}

// outwardNormal of edge a→b for counter-clockwise winding.
func outwardNormal(a, b Vec2) Vec2 {
	d := b.Sub(a)
	return Vec2{d.Y, -d.X}.Normalize()
}
