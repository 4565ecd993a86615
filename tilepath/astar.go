package tilepath

import (
	"container/heap"

	"github.com/arveldin/wayfarer/geom"
)

// neighborOffsets lists the 8-neighborhood as (dx,dy) pairs; cardinals first
// so that, all else equal, CanStep is checked in a stable order.
var neighborOffsets = [8][2]int32{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// FindPath runs A* from start to end. Returns an empty slice (never an
// error) when no path exists within MaxIterations expansions; ErrTooFar and
// ErrDifferentPlanes are returned for inputs the search cannot even attempt.
//
// Complexity: O(MaxIterations log MaxIterations) worst case.
func (p *Pathfinder) FindPath(start, end geom.Tile, opts ...Option) ([]geom.Tile, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	if !geom.SamePlane(start, end) {
		return nil, ErrDifferentPlanes
	}
	if geom.Chebyshev(start, end) > MaxPathLength {
		return nil, ErrTooFar
	}
	if geom.Equal(start, end) {
		return []geom.Tile{start}, nil
	}

	if !cfg.ignoreCache && p.haveCached && geom.Equal(p.lastStart, start) && geom.Equal(p.lastEnd, end) {
		return p.lastPath, nil
	}

	path, stats := p.search(start, end)
	p.lastStats = stats

	if cfg.smoothing && len(path) > 0 {
		path = p.smooth(path)
	}

	if !cfg.ignoreCache {
		p.lastStart, p.lastEnd, p.lastPath, p.haveCached = start, end, path, true
	}

	return path, nil
}

// IsWalkable reports whether t can be occupied (delegates to the oracle).
func (p *Pathfinder) IsWalkable(t geom.Tile) bool {
	return !p.oracle.IsBlocked(t)
}

// astarNode is one entry in the open/closed sets.
type astarNode struct {
	tile   geom.Tile
	g, f   int32
	parent *astarNode
	index  int // heap index, maintained by container/heap
}

// search runs the core A* loop, returning the reconstructed path (nil if
// none found or the cap was hit) and expansion statistics.
func (p *Pathfinder) search(start, end geom.Tile) ([]geom.Tile, Stats) {
	open := make(nodeHeap, 0, 64)
	heap.Init(&open)

	startNode := &astarNode{tile: start, g: 0, f: octile(start, end)}
	heap.Push(&open, startNode)

	best := make(map[geom.Tile]*astarNode, 64)
	best[start] = startNode

	closed := make(map[geom.Tile]bool, 64)

	expanded := 0
	for open.Len() > 0 {
		if expanded >= MaxIterations {
			p.log.Debug("tilepath: iteration cap reached", "start", start, "end", end, "cap", MaxIterations)
			return nil, Stats{Expanded: expanded, CapHit: true}
		}

		current := heap.Pop(&open).(*astarNode)
		if closed[current.tile] {
			continue
		}
		closed[current.tile] = true
		expanded++

		if geom.Equal(current.tile, end) {
			return reconstruct(current), Stats{Expanded: expanded}
		}

		for _, off := range neighborOffsets {
			next := geom.Tile{X: current.tile.X + off[0], Y: current.tile.Y + off[1], Z: current.tile.Z}
			if closed[next] {
				continue
			}
			if !p.oracle.CanStep(current.tile, next) {
				continue
			}

			step := int32(costCardinal)
			if off[0] != 0 && off[1] != 0 {
				step = costDiagonal
			}
			g := current.g + step

			if existing, ok := best[next]; ok && existing.g <= g {
				continue
			}

			node := &astarNode{tile: next, g: g, f: g + octile(next, end), parent: current}
			best[next] = node
			heap.Push(&open, node)
		}
	}

	return nil, Stats{Expanded: expanded}
}

// octile computes the admissible, consistent heuristic 10*max(|dx|,|dy|) +
// 4*min(|dx|,|dy|) given the 10/14 movement weights.
func octile(a, b geom.Tile) int32 {
	dx := absInt32(a.X - b.X)
	dy := absInt32(a.Y - b.Y)
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}
	return 10*hi + 4*lo
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// reconstruct walks parent pointers from goal back to start and reverses.
func reconstruct(n *astarNode) []geom.Tile {
	var path []geom.Tile
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.tile)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// smooth removes interior waypoints that have direct line of sight from a
// non-adjacent ancestor: up to 3 passes, each collapsing one layer of
// unnecessary zig-zags.
func (p *Pathfinder) smooth(path []geom.Tile) []geom.Tile {
	for pass := 0; pass < 3 && len(path) > 2; pass++ {
		out := make([]geom.Tile, 0, len(path))
		out = append(out, path[0])
		changed := false
		for i := 1; i < len(path)-1; i++ {
			prev := out[len(out)-1]
			next := path[i+1]
			if p.oracle.LineOfSight(prev, next) {
				changed = true
				continue // drop path[i]
			}
			out = append(out, path[i])
		}
		out = append(out, path[len(path)-1])
		path = out
		if !changed {
			break
		}
	}
	return path
}

// nodeHeap is a min-heap of *astarNode ordered by f, using lazy
// decrease-key: stale entries are skipped via the closed set on pop.
type nodeHeap []*astarNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].f < h[j].f }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *nodeHeap) Push(x interface{}) { n := x.(*astarNode); n.index = len(*h); *h = append(*h, n) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}
