package graphsearch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/graphsearch"
	"github.com/arveldin/wayfarer/navgraph"
	"github.com/arveldin/wayfarer/navpolicy/navpolicytest"
)

func TestAnalyze_FullPathAvailable(t *testing.T) {
	base := bankBase()
	base.Edges = []navgraph.Edge{{From: "a", To: "b", Type: navgraph.Walk, CostTicks: 30}}
	g, err := navgraph.NewBuilder().Build(base, nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	s := graphsearch.New(g)
	reqs := navpolicytest.NewFakePlayerRequirements()
	analysis := s.Analyze(context.Background(), geom.Tile{X: 10, Y: 0}, geom.Tile{X: 20, Y: 0}, reqs, nil)
	assert.Equal(t, graphsearch.FullPathAvailable, analysis.Status)
}

func TestAnalyze_NoPathBetweenNodes(t *testing.T) {
	g, err := navgraph.NewBuilder().Build(bankBase(), nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	s := graphsearch.New(g)
	reqs := navpolicytest.NewFakePlayerRequirements()
	analysis := s.Analyze(context.Background(), geom.Tile{X: 10, Y: 0}, geom.Tile{X: 20, Y: 0}, reqs, nil)
	assert.Equal(t, graphsearch.NoPathBetweenNodes, analysis.Status)
}

func TestAnalyze_PlayerIsolated(t *testing.T) {
	g, err := navgraph.NewBuilder().Build(bankBase(), nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	s := graphsearch.New(g)
	reqs := navpolicytest.NewFakePlayerRequirements()
	analysis := s.Analyze(context.Background(), geom.Tile{X: 10_000, Y: 10_000}, geom.Tile{X: 20, Y: 0}, reqs, nil)
	assert.Equal(t, graphsearch.PlayerIsolated, analysis.Status)
}
