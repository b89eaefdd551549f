// pkg/navgraph/graph.go
package navgraph

import (
	"log"

	"go-dino-defense/pkg/geom"
)

// NodeID indexes a node of the obstacle graph.
type NodeID int

type node struct {
	pos      geom.Vec2
	obstacle int  // index of the owning obstacle, -1 for query nodes
	enclosed bool // lies inside another buffered obstacle, never connected
	edges    []NodeID
}

// Obstacle is an impassable convex polygon together with its buffered outline.
type Obstacle struct {
	Polygon  geom.Polygon // as registered, counter-clockwise
	Buffered geom.Polygon // Polygon pushed out by the buffer radius
}

// ObstacleGraph is a visibility graph over the buffered corners of polygonal obstacles.
// Obstacles only accumulate. Path queries leave the permanent graph untouched.
type ObstacleGraph struct {
	bufferRadius float64
	obstacles    []*Obstacle
	nodes        []*node
	permanent    int // nodes[:permanent] belong to obstacles
}

// NewObstacleGraph creates an empty graph. bufferRadius keeps agents clear of obstacle corners.
func NewObstacleGraph(bufferRadius float64) *ObstacleGraph {
	return &ObstacleGraph{bufferRadius: bufferRadius}
}

// BufferRadius returns the distance kept between paths and obstacle edges.
func (g *ObstacleGraph) BufferRadius() float64 {
	return g.bufferRadius
}

// Obstacles returns the registered (unbuffered) obstacles in insertion order.
func (g *ObstacleGraph) Obstacles() []*Obstacle {
	out := make([]*Obstacle, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// NodeCount returns the number of nodes currently in the graph.
func (g *ObstacleGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges currently in the graph.
func (g *ObstacleGraph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.edges)
	}
	return total / 2
}

// AddObstacles registers new impassable polygons.
// Edges the new obstacles block are dropped, covered nodes are enclosed, and the corners of
// the new obstacles are connected to everything they can see.
func (g *ObstacleGraph) AddObstacles(polygons []geom.Polygon) {
	first := len(g.obstacles)
	for _, p := range polygons {
		if len(p) < 3 {
			log.Printf("[ObstacleGraph] Skipping degenerate obstacle with %d vertices", len(p))
			continue
		}
		ccw := p.CCW()
		g.obstacles = append(g.obstacles, &Obstacle{
			Polygon:  ccw,
			Buffered: ccw.Offset(g.bufferRadius),
		})
	}
	added := g.obstacles[first:]
	if len(added) == 0 {
		return
	}

	for _, n := range g.nodes {
		if !n.enclosed && coveredBy(added, n.pos) {
			n.enclosed = true
		}
	}
	for _, n := range g.nodes {
		kept := make([]NodeID, 0, len(n.edges))
		for _, other := range n.edges {
			if n.enclosed || g.nodes[other].enclosed || blockedBy(added, n.pos, g.nodes[other].pos) {
				continue
			}
			kept = append(kept, other)
		}
		n.edges = kept
	}

	for i, o := range added {
		for _, corner := range o.Buffered {
			id := NodeID(len(g.nodes))
			n := &node{pos: corner, obstacle: first + i}
			g.nodes = append(g.nodes, n)
			if g.insideAny(corner) {
				n.enclosed = true
				continue
			}
			for j := NodeID(0); j < id; j++ {
				if !g.nodes[j].enclosed && g.visible(corner, g.nodes[j].pos) {
					g.link(id, j)
				}
			}
		}
	}
	g.permanent = len(g.nodes)

	log.Printf("[ObstacleGraph] Added %d obstacles: %d nodes, %d edges", len(added), g.NodeCount(), g.EdgeCount())
}

// visible reports whether the segment ab crosses no buffered obstacle.
func (g *ObstacleGraph) visible(a, b geom.Vec2) bool {
	return !blockedBy(g.obstacles, a, b)
}

func (g *ObstacleGraph) insideAny(p geom.Vec2) bool {
	return coveredBy(g.obstacles, p)
}

func (g *ObstacleGraph) link(a, b NodeID) {
	g.nodes[a].edges = append(g.nodes[a].edges, b)
	g.nodes[b].edges = append(g.nodes[b].edges, a)
}

// connectNode adds a query node and connects it to every visible node.
// A node inside a buffered obstacle stays unconnected.
func (g *ObstacleGraph) connectNode(pos geom.Vec2) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, &node{pos: pos, obstacle: -1})
	if g.insideAny(pos) {
		return id
	}
	for j := NodeID(0); j < id; j++ {
		if !g.nodes[j].enclosed && g.visible(pos, g.nodes[j].pos) {
			g.link(id, j)
		}
	}
	return id
}

// removeQueryNodes drops every node added by connectNode along with the links to it.
func (g *ObstacleGraph) removeQueryNodes() {
	for id := len(g.nodes) - 1; id >= g.permanent; id-- {
		for _, other := range g.nodes[id].edges {
			if int(other) < g.permanent {
				g.nodes[other].edges = removeEdge(g.nodes[other].edges, NodeID(id))
			}
		}
	}
	g.nodes = g.nodes[:g.permanent]
}

func removeEdge(edges []NodeID, id NodeID) []NodeID {
	for i, e := range edges {
		if e == id {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

func blockedBy(obstacles []*Obstacle, a, b geom.Vec2) bool {
	for _, o := range obstacles {
		if o.Buffered.SegmentCrossesInterior(a, b) {
			return true
		}
	}
	return false
}

func coveredBy(obstacles []*Obstacle, p geom.Vec2) bool {
	for _, o := range obstacles {
		if o.Buffered.Contains(p) {
			return true
		}
	}
	return false
}
