package navgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arveldin/wayfarer/navgraph"
)

func baseWithBank() navgraph.BaseData {
	return navgraph.BaseData{
		Nodes: []navgraph.Node{
			{ID: "bank_varrock", X: 10, Y: 10, Z: 0, Type: navgraph.Bank},
			{ID: "ge", X: 20, Y: 20, Z: 0, Type: navgraph.Generic},
			{ID: "ge_upstairs", X: 20, Y: 20, Z: 1, Type: navgraph.Generic},
		},
	}
}

func TestBuild_MissingBankIsFatal(t *testing.T) {
	_, err := navgraph.NewBuilder().Build(navgraph.BaseData{
		Nodes: []navgraph.Node{{ID: "x", Type: navgraph.Generic}},
	}, nil, navgraph.PlaneTransitionSet{})
	require.ErrorIs(t, err, navgraph.ErrNoBankNodes)
}

func TestBuild_OverlayLastWriterWins(t *testing.T) {
	base := baseWithBank()
	overlay := navgraph.RegionOverlay{
		RegionID: "r1",
		Nodes:    []navgraph.Node{{ID: "ge", X: 21, Y: 21, Z: 0, Type: navgraph.Altar}},
	}
	g, err := navgraph.NewBuilder().Build(base, []navgraph.RegionOverlay{overlay}, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	n, ok := g.Node("ge")
	require.True(t, ok)
	assert.Equal(t, navgraph.Altar, n.Type)
	assert.Equal(t, int32(21), n.X)
}

func TestBuild_BidirectionalExpansion(t *testing.T) {
	base := baseWithBank()
	base.Edges = []navgraph.Edge{
		{From: "bank_varrock", To: "ge", Type: navgraph.Walk, CostTicks: 30, Bidirectional: true},
	}
	g, err := navgraph.NewBuilder().Build(base, nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	_, ok := g.Edge("bank_varrock", "ge")
	require.True(t, ok)
	_, ok = g.Edge("ge", "bank_varrock")
	require.True(t, ok)
}

func TestBuild_SynthesizesStairs(t *testing.T) {
	g, err := navgraph.NewBuilder().Build(baseWithBank(), nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	e, ok := g.Edge("ge", "ge_upstairs")
	require.True(t, ok)
	assert.Equal(t, navgraph.Stairs, e.Type)
	assert.Equal(t, "Climb-up", e.Action)
	assert.EqualValues(t, 5, e.CostTicks)

	back, ok := g.Edge("ge_upstairs", "ge")
	require.True(t, ok)
	assert.Equal(t, "Climb-down", back.Action)
}

func TestBuild_PlaneTransitionsCreateDynamicNodes(t *testing.T) {
	transitions := navgraph.PlaneTransitionSet{Transitions: []navgraph.PlaneTransition{
		{X: 5, Y: 5, BasePlane: 0, Above: true, Bidirectional: true, CostTicks: 3},
	}}
	g, err := navgraph.NewBuilder().Build(baseWithBank(), nil, transitions)
	require.NoError(t, err)

	_, ok := g.Node("dyn_5_5_0")
	require.True(t, ok)
	_, ok = g.Node("dyn_5_5_1")
	require.True(t, ok)

	e, ok := g.Edge("dyn_5_5_0", "dyn_5_5_1")
	require.True(t, ok)
	assert.Equal(t, "Climb-up", e.Action)
	back, ok := g.Edge("dyn_5_5_1", "dyn_5_5_0")
	require.True(t, ok)
	assert.Equal(t, "Climb-down", back.Action)
}

// A bidirectional fixture reaching both neighboring planes synthesizes all
// four directional edges: up-from-base, down-to-base, down-from-base, and
// up-to-base.
func TestBuild_BidirectionalTransitionBothPlanesFourEdges(t *testing.T) {
	transitions := navgraph.PlaneTransitionSet{Transitions: []navgraph.PlaneTransition{
		{X: 7, Y: 7, BasePlane: 1, Above: true, Below: true, Bidirectional: true, CostTicks: 3},
	}}
	g, err := navgraph.NewBuilder().Build(baseWithBank(), nil, transitions)
	require.NoError(t, err)

	up, ok := g.Edge("dyn_7_7_1", "dyn_7_7_2")
	require.True(t, ok)
	assert.Equal(t, "Climb-up", up.Action)
	downBack, ok := g.Edge("dyn_7_7_2", "dyn_7_7_1")
	require.True(t, ok)
	assert.Equal(t, "Climb-down", downBack.Action)

	down, ok := g.Edge("dyn_7_7_1", "dyn_7_7_0")
	require.True(t, ok)
	assert.Equal(t, "Climb-down", down.Action)
	upBack, ok := g.Edge("dyn_7_7_0", "dyn_7_7_1")
	require.True(t, ok)
	assert.Equal(t, "Climb-up", upBack.Action)
}

// A non-bidirectional fixture emits only the edge leaving the base, with
// the registered action.
func TestBuild_OneWayTransitionSingleEdge(t *testing.T) {
	transitions := navgraph.PlaneTransitionSet{Transitions: []navgraph.PlaneTransition{
		{X: 3, Y: 3, BasePlane: 1, Below: true, Action: "Jump-down", CostTicks: 2},
	}}
	g, err := navgraph.NewBuilder().Build(baseWithBank(), nil, transitions)
	require.NoError(t, err)

	e, ok := g.Edge("dyn_3_3_1", "dyn_3_3_0")
	require.True(t, ok)
	assert.Equal(t, "Jump-down", e.Action)
	_, ok = g.Edge("dyn_3_3_0", "dyn_3_3_1")
	assert.False(t, ok)
}

func TestBuild_FreeTeleportRegisteredSeparately(t *testing.T) {
	base := baseWithBank()
	base.Edges = []navgraph.Edge{
		{From: navgraph.AnyOrigin, To: "bank_varrock", Type: navgraph.FreeTeleport, CostTicks: 5},
	}
	g, err := navgraph.NewBuilder().Build(base, nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	assert.Len(t, g.AnyOriginEdges(), 1)
	assert.Empty(t, g.EdgesFrom(navgraph.AnyOrigin))
}

func TestBuild_InvalidAgilityEdgeDropped(t *testing.T) {
	base := baseWithBank()
	base.Edges = []navgraph.Edge{
		{From: "ge", To: "bank_varrock", Type: navgraph.Agility, AgilityLevel: 0, CostTicks: 10},
	}
	g, err := navgraph.NewBuilder().Build(base, nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	_, ok := g.Edge("ge", "bank_varrock")
	assert.False(t, ok)
}
