package graphsearch

import (
	"context"

	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/navpolicy"
)

// Analyze classifies why a route from a raw player point to a raw
// destination point does or does not exist. It never fails: every outcome
// is expressed through Status.
func (s *Search) Analyze(ctx context.Context, playerPoint, destination geom.Tile, reqs navpolicy.PlayerRequirements, policy navpolicy.ResourcePolicy, opts ...Option) NavigationAnalysis {
	cfg := s.opts
	for _, opt := range opts {
		opt(&cfg)
	}

	startNode, haveStart := s.graph.NearestNodeAnyPlane(playerPoint)
	endNode, haveEnd := s.graph.NearestNodeAnyPlane(destination)
	if !haveStart || !haveEnd {
		return NavigationAnalysis{Status: SystemUnavailable}
	}

	firstMile := geom.Chebyshev(playerPoint, geom.Tile{X: startNode.X, Y: startNode.Y, Z: startNode.Z})
	lastMile := geom.Chebyshev(destination, geom.Tile{X: endNode.X, Y: endNode.Y, Z: endNode.Z})

	analysis := NavigationAnalysis{
		FirstMileDistance: firstMile,
		LastMileDistance:  lastMile,
		NearestStartNode:  startNode.ID,
		NearestEndNode:    endNode.ID,
	}

	startIsolated := firstMile > cfg.isolationThreshold
	endIsolated := lastMile > cfg.isolationThreshold
	switch {
	case startIsolated && endIsolated:
		analysis.Status = CompletelyIsolated
		return analysis
	case startIsolated:
		analysis.Status = PlayerIsolated
		return analysis
	case endIsolated:
		analysis.Status = DestinationIsolated
		return analysis
	}

	result, err := s.FindPath(ctx, startNode.ID, endNode.ID, reqs, policy, opts...)
	if err != nil {
		analysis.Status = SystemUnavailable
		return analysis
	}
	if len(result.Edges) == 0 && startNode.ID != endNode.ID {
		analysis.Status = NoPathBetweenNodes
		return analysis
	}
	analysis.Result = &result

	nearStart := firstMile <= cfg.nearNodeThreshold
	nearEnd := lastMile <= cfg.nearNodeThreshold
	switch {
	case nearStart && nearEnd:
		analysis.Status = FullPathAvailable
	case nearStart:
		analysis.Status = LastMileManual
	case nearEnd:
		analysis.Status = FirstMileManual
	default:
		analysis.Status = BothEndsManual
	}
	return analysis
}
