package navgraph

import (
	"fmt"
	"log/slog"

	pkgerrors "github.com/pkg/errors"

	"github.com/arveldin/wayfarer/geom"
)

// BaseData is the first layer of graph construction: the core node/edge
// set loaded before any region overlay is applied. The external JSON
// loader that produces this value lives outside this module; Builder only
// consumes the parsed shape.
type BaseData struct {
	Nodes []Node
	Edges []Edge
}

// RegionOverlay merges additional nodes/edges into the base graph. Node-id
// collisions are last-writer-wins, in overlay application order.
type RegionOverlay struct {
	RegionID string
	Nodes    []Node
	Edges    []Edge
}

// PlaneTransition describes one plane-change fixture at (X, Y): a ladder,
// staircase, or trapdoor anchored on BasePlane. Above and Below mark which
// neighboring planes the fixture reaches. A Bidirectional fixture
// synthesizes a directional edge pair per reachable plane — up-from-base
// and down-to-base toward the plane above, plus the symmetric pair toward
// the plane below — four edges when both apply. A non-bidirectional
// fixture produces only the edges leaving the base, one per reachable
// plane, using the registered Action.
type PlaneTransition struct {
	X, Y      int32
	BasePlane int32
	Above     bool
	Below     bool
	// Action overrides the synthesized action on edges leaving the base
	// ("Climb-up"/"Climb-down" by plane delta when empty); ReverseAction
	// does the same for edges returning to the base.
	Action        string
	ReverseAction string
	CostTicks     int64
	Bidirectional bool
}

// PlaneTransitionSet is the externally supplied plane-transitions registry.
type PlaneTransitionSet struct {
	Transitions []PlaneTransition
}

const stairsCost = 5

// Builder assembles a Graph from base data, overlays, and plane
// transitions through a fixed sequence of build steps.
type Builder struct {
	log *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger attaches a structured logger for dropped-edge warnings.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBuilder constructs a Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{log: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build runs the ordered construction pipeline and returns an immutable
// Graph. A missing-critical-node condition (no Bank-type node anywhere in
// base+overlays) is a fatal configuration error: the graph is not
// partially returned.
func (b *Builder) Build(base BaseData, overlays []RegionOverlay, transitions PlaneTransitionSet, opts ...BuilderOption) (*Graph, error) {
	for _, opt := range opts {
		opt(b)
	}

	g := newGraph()

	// Step 1: load base nodes/edges.
	rawNodes := map[string]Node{}
	for _, n := range base.Nodes {
		rawNodes[n.ID] = n
	}
	var rawEdges []Edge
	rawEdges = append(rawEdges, base.Edges...)

	// Step 2: overlay region data, last-writer-wins on node id.
	for _, ov := range overlays {
		for _, n := range ov.Nodes {
			rawNodes[n.ID] = n
		}
		rawEdges = append(rawEdges, ov.Edges...)
	}

	if !hasBankNode(rawNodes) {
		return nil, pkgerrors.Wrap(ErrNoBankNodes, "navgraph: Build")
	}

	for id := range rawNodes {
		n := rawNodes[id]
		g.nodes[id] = &n
	}
	if _, ok := g.nodes[AnyOrigin]; !ok {
		g.nodes[AnyOrigin] = &Node{ID: AnyOrigin}
	}

	// Step 3: expand bidirectional edges into both directions.
	expanded := make([]*Edge, 0, len(rawEdges)*2)
	for i := range rawEdges {
		e := rawEdges[i]
		expanded = append(expanded, &e)
		if e.Bidirectional {
			rev := e
			rev.From, rev.To = e.To, e.From
			rev.FromPlane, rev.ToPlane = e.ToPlane, e.FromPlane
			expanded = append(expanded, &rev)
		}
	}

	// Step 4: synthesize STAIRS edges for same-(x,y) cross-plane node pairs.
	expanded = append(expanded, synthesizeStairs(g.nodes)...)

	// Step 5: ingest plane transitions, creating dynamic nodes as needed.
	expanded = append(expanded, b.ingestTransitions(g, transitions)...)

	// Steps 6-7: validate, split off free-teleports, and index adjacency.
	for _, e := range expanded {
		if !b.validateEdge(e) {
			continue
		}
		if e.Type == FreeTeleport {
			g.freeTeleports = append(g.freeTeleports, e)
			continue
		}
		if _, ok := g.nodes[e.From]; !ok {
			b.log.Warn("navgraph: dropping edge with unresolved From", "from", e.From, "to", e.To)
			continue
		}
		if _, ok := g.nodes[e.To]; !ok {
			b.log.Warn("navgraph: dropping edge with unresolved To", "from", e.From, "to", e.To)
			continue
		}
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		g.reverse[e.To] = append(g.reverse[e.To], e)
	}

	for id, n := range g.nodes {
		if id == AnyOrigin {
			continue
		}
		key := [2]int32{n.X, n.Y}
		g.nodesByXY[key] = append(g.nodesByXY[key], n)
	}

	return g, nil
}

func hasBankNode(nodes map[string]Node) bool {
	for _, n := range nodes {
		if n.Type == Bank {
			return true
		}
	}
	return false
}

// synthesizeStairs gives every pair of distinct nodes sharing (x,y) on
// different planes a STAIRS edge in each direction, named by plane delta.
func synthesizeStairs(nodes map[string]*Node) []*Edge {
	byXY := map[[2]int32][]*Node{}
	for id, n := range nodes {
		if id == AnyOrigin {
			continue
		}
		key := [2]int32{n.X, n.Y}
		byXY[key] = append(byXY[key], n)
	}

	var out []*Edge
	for _, group := range byXY {
		for i := range group {
			for j := range group {
				if i == j || group[i].Z == group[j].Z {
					continue
				}
				a, bb := group[i], group[j]
				action := "Climb-down"
				if bb.Z > a.Z {
					action = "Climb-up"
				}
				out = append(out, &Edge{
					From: a.ID, To: bb.ID, Type: Stairs, CostTicks: stairsCost,
					FromPlane: a.Z, ToPlane: bb.Z, Action: action,
				})
			}
		}
	}
	return out
}

// ingestTransitions converts the registry into directional edges, creating
// dyn_{x}_{y}_{z} nodes for any fixture endpoint that has no corresponding
// base/overlay node at that exact coordinate.
func (b *Builder) ingestTransitions(g *Graph, set PlaneTransitionSet) []*Edge {
	var out []*Edge
	for _, t := range set.Transitions {
		baseID := b.resolveDynamicNode(g, t.X, t.Y, t.BasePlane)
		if t.Above {
			out = append(out, b.transitionEdges(g, t, baseID, t.BasePlane+1)...)
		}
		if t.Below {
			out = append(out, b.transitionEdges(g, t, baseID, t.BasePlane-1)...)
		}
	}
	return out
}

// transitionEdges emits the edge(s) between a fixture's base plane and one
// reachable neighboring plane: the base-to-neighbor edge always, plus the
// neighbor-to-base return edge when the fixture is bidirectional.
func (b *Builder) transitionEdges(g *Graph, t PlaneTransition, baseID string, toPlane int32) []*Edge {
	if !geom.ValidPlane(toPlane) {
		b.log.Warn("navgraph: dropping plane transition outside valid planes",
			"x", t.X, "y", t.Y, "plane", toPlane)
		return nil
	}
	otherID := b.resolveDynamicNode(g, t.X, t.Y, toPlane)

	action := t.Action
	if action == "" {
		action = climbAction(t.BasePlane, toPlane)
	}
	out := []*Edge{{
		From: baseID, To: otherID, Type: Stairs, CostTicks: t.CostTicks,
		FromPlane: t.BasePlane, ToPlane: toPlane, Action: action,
	}}
	if !t.Bidirectional {
		return out
	}

	reverse := t.ReverseAction
	if reverse == "" {
		reverse = climbAction(toPlane, t.BasePlane)
	}
	return append(out, &Edge{
		From: otherID, To: baseID, Type: Stairs, CostTicks: t.CostTicks,
		FromPlane: toPlane, ToPlane: t.BasePlane, Action: reverse,
	})
}

func climbAction(from, to int32) string {
	if to > from {
		return "Climb-up"
	}
	return "Climb-down"
}

func (b *Builder) resolveDynamicNode(g *Graph, x, y, z int32) string {
	for id, n := range g.nodes {
		if id != AnyOrigin && n.X == x && n.Y == y && n.Z == z {
			return id
		}
	}
	id := fmt.Sprintf("dyn_%d_%d_%d", x, y, z)
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = &Node{ID: id, X: x, Y: y, Z: z, Type: Generic}
	}
	return id
}

// validateEdge enforces the per-type edge invariants: a violation is
// dropped with a warning, never a panic.
func (b *Builder) validateEdge(e *Edge) bool {
	switch e.Type {
	case Stairs:
		if e.FromPlane == e.ToPlane {
			b.log.Warn("navgraph: dropping STAIRS edge with equal planes", "from", e.From, "to", e.To)
			return false
		}
	case Agility:
		if e.AgilityLevel <= 0 {
			b.log.Warn("navgraph: dropping AGILITY edge with non-positive level", "from", e.From, "to", e.To)
			return false
		}
		if e.FailureRate < 0 || e.FailureRate > 1 {
			b.log.Warn("navgraph: dropping AGILITY edge with out-of-range failure rate", "from", e.From, "to", e.To)
			return false
		}
	case FreeTeleport:
		if e.From != AnyOrigin {
			b.log.Warn("navgraph: dropping FREE_TELEPORT edge not sourced at AnyOrigin", "from", e.From, "to", e.To)
			return false
		}
	}
	return true
}
