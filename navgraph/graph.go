package navgraph

import (
	"sync"

	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/navpolicy"
)

// Graph is the immutable navigation graph produced by Builder.Build. Build
// itself is single-threaded; the RWMutex guards concurrent *reads* from a
// worker goroutine (graphsearch) racing the coordinator's poll path, not
// concurrent writes. There are none after Build returns.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]*Node
	nodesByXY map[[2]int32][]*Node
	adjacency map[string][]*Edge
	reverse   map[string][]*Edge

	// freeTeleports holds every FreeTeleport edge, attached to AnyOrigin and
	// never placed in adjacency[AnyOrigin] itself.
	freeTeleports []*Edge
}

func newGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		nodesByXY: make(map[[2]int32][]*Node),
		adjacency: make(map[string][]*Edge),
		reverse:   make(map[string][]*Edge),
	}
}

// Node returns the node with the given id, or false if absent.
func (g *Graph) Node(id string) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	return n, ok
}

// EdgesFrom returns the outgoing adjacency of id (excluding any-origin
// edges; see TraversableEdges for the filtered, any-origin-augmented view).
func (g *Graph) EdgesFrom(id string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*Edge(nil), g.adjacency[id]...)
}

// EdgesTo returns the reverse adjacency of id.
func (g *Graph) EdgesTo(id string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*Edge(nil), g.reverse[id]...)
}

// AnyOriginEdges returns every registered FreeTeleport edge.
func (g *Graph) AnyOriginEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*Edge(nil), g.freeTeleports...)
}

// TraversableEdges returns the adjacency of id filtered by reqs, plus every
// AnyOrigin edge reqs satisfies, except when id == AnyOrigin itself (which
// would create a virtual-start self-loop).
func (g *Graph) TraversableEdges(id string, reqs navpolicy.PlayerRequirements) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.adjacency[id])+len(g.freeTeleports))
	for _, e := range g.adjacency[id] {
		if reqs == nil || reqs.CanTraverseEdge(e.Requirements) {
			out = append(out, e)
		}
	}
	if id == AnyOrigin {
		return out
	}
	for _, e := range g.freeTeleports {
		if reqs == nil || reqs.CanTraverseEdge(e.Requirements) {
			out = append(out, e)
		}
	}
	return out
}

// Edge returns the edge from -> to if one exists.
func (g *Graph) Edge(from, to string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e, true
		}
	}
	return nil, false
}

// NodesAt returns every node registered at (x,y), across all planes.
func (g *Graph) NodesAt(x, y int32) []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]*Node(nil), g.nodesByXY[[2]int32{x, y}]...)
}

// NearestNodeSamePlane returns the node on t.Z closest to t by Chebyshev
// distance, or false if the graph has no nodes on that plane.
func (g *Graph) NearestNodeSamePlane(t geom.Tile) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return nearest(g.nodes, t, true)
}

// NearestNodeAnyPlane returns the node closest to t by Chebyshev distance
// over (x,y) only, ignoring plane.
func (g *Graph) NearestNodeAnyPlane(t geom.Tile) (*Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return nearest(g.nodes, t, false)
}

func nearest(nodes map[string]*Node, t geom.Tile, samePlane bool) (*Node, bool) {
	var best *Node
	var bestDist int32
	for _, n := range nodes {
		if n.ID == AnyOrigin {
			continue
		}
		if samePlane && n.Z != t.Z {
			continue
		}
		d := geom.Chebyshev(t, geom.Tile{X: n.X, Y: n.Y, Z: n.Z})
		if best == nil || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, best != nil
}

// NodeCount returns the number of nodes in the graph, including AnyOrigin
// if registered.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}
