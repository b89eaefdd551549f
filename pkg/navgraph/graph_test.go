package navgraph

import (
	"math"
	"reflect"
	"testing"

	"go-dino-defense/pkg/geom"
)

func square(cx, cy, half float64) geom.Polygon {
	return geom.Polygon{
		geom.V(cx-half, cy-half),
		geom.V(cx+half, cy-half),
		geom.V(cx+half, cy+half),
		geom.V(cx-half, cy+half),
	}
}

func pathLength(path []geom.Vec2) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += path[i-1].Dist(path[i])
	}
	return total
}

func TestFindPathWithoutObstacles(t *testing.T) {
	g := NewObstacleGraph(5)
	path := g.FindPath(geom.V(0, 0), geom.V(100, 0))
	want := []geom.Vec2{geom.V(0, 0), geom.V(100, 0)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("expected direct path %v, got %v", want, path)
	}
}

func TestFindPathAroundObstacle(t *testing.T) {
	g := NewObstacleGraph(5)
	g.AddObstacles([]geom.Polygon{square(50, 0, 10)})

	path := g.FindPath(geom.V(0, 0), geom.V(100, 0))
	if len(path) != 4 {
		t.Fatalf("expected 4 waypoints, got %d: %v", len(path), path)
	}
	if path[0] != geom.V(0, 0) || path[3] != geom.V(100, 0) {
		t.Errorf("path should start and end at the query points, got %v", path)
	}
	if path[1].X != 35 || math.Abs(path[1].Y) != 15 {
		t.Errorf("expected to pass the buffered corner (35, ±15), got %v", path[1])
	}
	if path[2].X != 65 || path[2].Y != path[1].Y {
		t.Errorf("expected to follow the buffered edge to x=65, got %v", path[2])
	}

	buffered := g.Obstacles()[0].Buffered
	for i := 1; i < len(path); i++ {
		if buffered.SegmentCrossesInterior(path[i-1], path[i]) {
			t.Errorf("segment %v -> %v crosses the obstacle", path[i-1], path[i])
		}
	}

	want := 2*math.Hypot(35, 15) + 30
	if got := pathLength(path); math.Abs(got-want) > 1e-9 {
		t.Errorf("expected length %f, got %f", want, got)
	}
}

func TestFindPathIsIdempotent(t *testing.T) {
	g := NewObstacleGraph(8)
	g.AddObstacles([]geom.Polygon{
		square(200, 0, 30),
		square(400, 60, 40),
		geom.Diamond(geom.V(600, -20), 120, 60),
	})

	nodes, edges := g.NodeCount(), g.EdgeCount()
	first := g.FindPath(geom.V(0, 10), geom.V(800, 0))
	second := g.FindPath(geom.V(0, 10), geom.V(800, 0))

	if first == nil {
		t.Fatal("expected a path")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated queries differ:\n%v\n%v", first, second)
	}
	if g.NodeCount() != nodes || g.EdgeCount() != edges {
		t.Errorf("query polluted the graph: nodes %d->%d, edges %d->%d",
			nodes, g.NodeCount(), edges, g.EdgeCount())
	}
}

func TestObstaclesOffThePathDoNotChangeIt(t *testing.T) {
	g := NewObstacleGraph(32)
	from, to := geom.V(-200, 384), geom.V(1224, 384)
	before := g.FindPath(from, to)

	g.AddObstacles([]geom.Polygon{
		geom.Diamond(geom.V(300, 650), 150, 60),
		geom.Diamond(geom.V(700, 100), 150, 60),
		square(900, 700, 20),
	})
	after := g.FindPath(from, to)

	if !reflect.DeepEqual(before, after) {
		t.Errorf("expected unchanged path, before %v after %v", before, after)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	g := NewObstacleGraph(5)
	g.AddObstacles([]geom.Polygon{square(50, 0, 10)})

	t.Run("goal inside obstacle", func(t *testing.T) {
		if path := g.FindPath(geom.V(0, 0), geom.V(50, 0)); path != nil {
			t.Errorf("expected no path, got %v", path)
		}
	})

	t.Run("start inside buffer", func(t *testing.T) {
		if path := g.FindPath(geom.V(62, 0), geom.V(200, 0)); path != nil {
			t.Errorf("expected no path, got %v", path)
		}
	})

	t.Run("graph restored after failed query", func(t *testing.T) {
		if g.NodeCount() != 4 {
			t.Errorf("expected 4 permanent nodes, got %d", g.NodeCount())
		}
	})
}

func TestAddObstaclesPrunesBlockedEdges(t *testing.T) {
	g := NewObstacleGraph(2)
	g.AddObstacles([]geom.Polygon{square(0, 0, 10), square(200, 0, 10)})
	if crossing := countCrossing(g, 8); crossing == 0 {
		t.Fatal("expected edges between the squares before the wall")
	}

	// A tall wall between the two squares.
	wall := geom.Polygon{geom.V(95, -300), geom.V(105, -300), geom.V(105, 300), geom.V(95, 300)}
	g.AddObstacles([]geom.Polygon{wall})

	if g.NodeCount() != 12 {
		t.Errorf("expected 12 nodes, got %d", g.NodeCount())
	}
	if crossing := countCrossing(g, 8); crossing != 0 {
		t.Errorf("%d edges still cross the wall", crossing)
	}

	path := g.FindPath(geom.V(-50, 0), geom.V(250, 0))
	if path == nil {
		t.Fatal("expected a path around the wall")
	}
	for _, p := range path[1 : len(path)-1] {
		if p.X > 90 && p.X < 110 && math.Abs(p.Y) < 300 {
			t.Errorf("waypoint %v lies inside the wall buffer", p)
		}
	}
}

// countCrossing counts edges among the first n nodes that join x<100 to x>=100.
func countCrossing(g *ObstacleGraph, n int) int {
	count := 0
	for i, nd := range g.nodes[:n] {
		for _, other := range nd.edges {
			if int(other) > i && int(other) < n && (nd.pos.X < 100) != (g.nodes[other].pos.X < 100) {
				count++
			}
		}
	}
	return count
}

func TestCoveredNodesAreEnclosed(t *testing.T) {
	g := NewObstacleGraph(2)
	g.AddObstacles([]geom.Polygon{square(0, 0, 5)})
	g.AddObstacles([]geom.Polygon{square(0, 0, 50)})

	for i, n := range g.nodes[:4] {
		if !n.enclosed {
			t.Errorf("node %d at %v should be enclosed", i, n.pos)
		}
		if len(n.edges) != 0 {
			t.Errorf("enclosed node %d still has %d edges", i, len(n.edges))
		}
	}
}
