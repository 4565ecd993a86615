package navgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/navgraph"
	"github.com/arveldin/wayfarer/navpolicy"
	"github.com/arveldin/wayfarer/navpolicy/navpolicytest"
)

// Every non-virtual node sees every free-teleport edge in its traversable
// set; AnyOrigin itself must not, or Dijkstra would self-loop there.
func TestTraversableEdges_FreeTeleportUbiquityExceptAnyOrigin(t *testing.T) {
	base := baseWithBank()
	base.Edges = []navgraph.Edge{
		{From: navgraph.AnyOrigin, To: "bank_varrock", Type: navgraph.FreeTeleport, CostTicks: 5},
	}
	g, err := navgraph.NewBuilder().Build(base, nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	reqs := navpolicytest.NewFakePlayerRequirements()
	for _, id := range []string{"bank_varrock", "ge", "ge_upstairs"} {
		var teleports int
		for _, e := range g.TraversableEdges(id, reqs) {
			if e.Type == navgraph.FreeTeleport {
				teleports++
			}
		}
		assert.Equal(t, 1, teleports, "node %s should see the free teleport", id)
	}
	assert.Empty(t, g.TraversableEdges(navgraph.AnyOrigin, reqs))
}

func TestTraversableEdges_RequirementFiltering(t *testing.T) {
	base := baseWithBank()
	base.Edges = []navgraph.Edge{
		{From: "ge", To: "bank_varrock", Type: navgraph.Walk, CostTicks: 30,
			Requirements: []navpolicy.Requirement{navpolicy.AgilityLevel{Level: 60}}},
	}
	g, err := navgraph.NewBuilder().Build(base, nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	low := navpolicytest.NewFakePlayerRequirements()
	for _, e := range g.TraversableEdges("ge", low) {
		assert.NotEqual(t, "bank_varrock", e.To, "gated edge must be filtered out")
	}

	high := navpolicytest.NewFakePlayerRequirements()
	high.Agility = 70
	var found bool
	for _, e := range g.TraversableEdges("ge", high) {
		if e.To == "bank_varrock" {
			found = true
		}
	}
	assert.True(t, found, "edge should be traversable once the level is met")
}

func TestNearestNode(t *testing.T) {
	g, err := navgraph.NewBuilder().Build(baseWithBank(), nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)

	n, ok := g.NearestNodeSamePlane(geom.Tile{X: 11, Y: 11, Z: 0})
	require.True(t, ok)
	assert.Equal(t, "bank_varrock", n.ID)

	up, ok := g.NearestNodeAnyPlane(geom.Tile{X: 20, Y: 20, Z: 3})
	require.True(t, ok)
	assert.Contains(t, []string{"ge", "ge_upstairs"}, up.ID)
}
