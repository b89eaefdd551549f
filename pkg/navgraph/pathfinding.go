// pkg/navgraph/pathfinding.go
package navgraph

import (
	"container/heap"
	"math"

	"go-dino-defense/pkg/geom"
)

// FindPath returns the shortest obstacle-free route from one point to another, both
// endpoints included. Returns nil when no route exists (e.g. the goal is enclosed).
// The permanent graph is left exactly as it was.
func (g *ObstacleGraph) FindPath(from, to geom.Vec2) []geom.Vec2 {
	start := g.connectNode(from)
	goal := g.connectNode(to)
	defer g.removeQueryNodes()

	ids := g.aStar(start, goal)
	if ids == nil {
		return nil // Нет пути
	}
	path := make([]geom.Vec2, len(ids))
	for i, id := range ids {
		path[i] = g.nodes[id].pos
	}
	return path
}

// aStar находит кратчайший путь от start до goal
func (g *ObstacleGraph) aStar(start, goal NodeID) []NodeID {
	n := len(g.nodes)
	cost := make([]float64, n)
	parent := make([]NodeID, n)
	closed := make([]bool, n)
	for i := range cost {
		cost[i] = math.Inf(1)
		parent[i] = -1
	}
	goalPos := g.nodes[goal].pos

	pq := &PriorityQueue{}
	heap.Init(pq)
	cost[start] = 0
	heap.Push(pq, &Item{ID: start, Priority: g.nodes[start].pos.Dist(goalPos)})
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Item).ID
		if closed[current] {
			continue
		}
		if current == goal {
			return reconstructPath(parent, goal)
		}
		closed[current] = true
		for _, next := range g.nodes[current].edges {
			if closed[next] {
				continue
			}
			newCost := cost[current] + g.nodes[current].pos.Dist(g.nodes[next].pos)
			if newCost < cost[next] {
				cost[next] = newCost
				parent[next] = current
				heap.Push(pq, &Item{ID: next, Priority: newCost + g.nodes[next].pos.Dist(goalPos)})
			}
		}
	}
	return nil
}

// PriorityQueue для A*
type PriorityQueue []*Item

type Item struct {
	ID       NodeID
	Priority float64
}

func (pq PriorityQueue) Len() int { return len(pq) }

// Ties are broken by node index so identical queries expand nodes in the same order.
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].ID < pq[j].ID
}

func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Item))
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(parent []NodeID, goal NodeID) []NodeID {
	path := []NodeID{}
	for id := goal; id != -1; id = parent[id] {
		path = append([]NodeID{id}, path...)
	}
	return path
}
