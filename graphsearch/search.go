package graphsearch

import (
	"container/heap"
	"context"
	"errors"

	"github.com/arveldin/wayfarer/navgraph"
	"github.com/arveldin/wayfarer/navpolicy"
)

// ErrTimedOut names the time-budget condition. FindPath does not return it:
// a search that exceeds its budget returns an empty Result and a nil error,
// the same as no path.
var ErrTimedOut = errors.New("graphsearch: search exceeded time budget")

// FindPath runs Dijkstra from fromID to toID, filtering edges by reqs and
// reweighting them via policy. An empty Result (nil Edges, zero cost) with
// no error means "unreachable under current requirements".
func (s *Search) FindPath(ctx context.Context, fromID, toID string, reqs navpolicy.PlayerRequirements, policy navpolicy.ResourcePolicy, opts ...Option) (Result, error) {
	cfg := s.opts
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	if _, ok := s.graph.Node(fromID); !ok {
		return Result{}, nil
	}
	if _, ok := s.graph.Node(toID); !ok {
		return Result{}, nil
	}
	if fromID == toID {
		return Result{}, nil
	}

	dist := map[string]int64{fromID: 0}
	cameFrom := map[string]*navgraph.Edge{}
	visited := map[string]bool{}

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &pqItem{id: fromID, dist: 0})

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			cfg.log.Warn("graphsearch: search timed out", "from", fromID, "to", toID)
			return Result{}, nil
		default:
		}

		item := heap.Pop(&pq).(*pqItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		if u == toID {
			return Result{Edges: reconstructEdges(toID, cameFrom), TotalCost: d}, nil
		}

		for _, e := range s.graph.TraversableEdges(u, reqs) {
			if visited[e.To] {
				continue
			}
			if reqs != nil && !reqs.CanTraverseEdge(e.Requirements) {
				continue
			}
			if !policyPermits(e, policy) {
				continue
			}
			if shouldAvoidWilderness(policy) {
				if n, ok := s.graph.Node(e.To); ok && isWilderness(n) {
					continue
				}
			}

			nd := d + adjustedCost(e, reqs, policy)
			if existing, ok := dist[e.To]; ok && existing <= nd {
				continue
			}
			dist[e.To] = nd
			cameFrom[e.To] = e
			heap.Push(&pq, &pqItem{id: e.To, dist: nd})
		}
	}

	return Result{}, nil
}

func shouldAvoidWilderness(policy navpolicy.ResourcePolicy) bool {
	return policy != nil && policy.ShouldAvoidWilderness()
}

// FindPathToNearestType evaluates every candidate node of the given type
// and returns the cheapest reachable Result.
func (s *Search) FindPathToNearestType(ctx context.Context, fromID string, nodeType navgraph.NodeType, reqs navpolicy.PlayerRequirements, policy navpolicy.ResourcePolicy, candidates []string, opts ...Option) (Result, error) {
	var best Result
	found := false
	for _, id := range candidates {
		n, ok := s.graph.Node(id)
		if !ok || n.Type != nodeType {
			continue
		}
		r, err := s.FindPath(ctx, fromID, id, reqs, policy, opts...)
		if err != nil {
			return Result{}, err
		}
		if len(r.Edges) == 0 && id != fromID {
			continue
		}
		if !found || r.TotalCost < best.TotalCost {
			best, found = r, true
		}
	}
	if !found {
		return Result{}, nil
	}
	return best, nil
}

func reconstructEdges(to string, cameFrom map[string]*navgraph.Edge) []*navgraph.Edge {
	var out []*navgraph.Edge
	for cur := to; ; {
		e, ok := cameFrom[cur]
		if !ok {
			break
		}
		out = append(out, e)
		cur = e.From
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// pqItem is one entry in the lazy-deletion priority queue; stale entries
// are skipped via the visited set on pop.
type pqItem struct {
	id   string
	dist int64
}

type nodePQ []*pqItem

func (h nodePQ) Len() int            { return len(h) }
func (h nodePQ) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodePQ) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodePQ) Push(x interface{}) { *h = append(*h, x.(*pqItem)) }
func (h *nodePQ) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}
