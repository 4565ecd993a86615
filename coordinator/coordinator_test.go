package coordinator_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arveldin/wayfarer/collision"
	"github.com/arveldin/wayfarer/coordinator"
	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/graphsearch"
	"github.com/arveldin/wayfarer/navgraph"
	"github.com/arveldin/wayfarer/navpolicy"
	"github.com/arveldin/wayfarer/navpolicy/navpolicytest"
	"github.com/arveldin/wayfarer/pathcache"
	"github.com/arveldin/wayfarer/tilepath"
)

type fakeSupplier struct{}

func (fakeSupplier) Snapshot() (navpolicy.PlayerRequirements, navpolicy.ResourcePolicy) {
	return navpolicytest.NewFakePlayerRequirements(), navpolicytest.NewFakeResourcePolicy()
}

func clearOracle(t *testing.T) *collision.Oracle {
	t.Helper()
	planes := make([][][]geom.CollisionFlag, 1)
	planes[0] = make([][]geom.CollisionFlag, 200)
	for y := range planes[0] {
		planes[0][y] = make([]geom.CollisionFlag, 200)
	}
	o, err := collision.NewOracle(planes)
	require.NoError(t, err)
	return o
}

func newCoordinator(t *testing.T) *coordinator.Coordinator {
	t.Helper()
	oracle := clearOracle(t)
	pf := tilepath.New(oracle)
	cache := pathcache.New()
	g, err := navgraph.NewBuilder().Build(navgraph.BaseData{
		Nodes: []navgraph.Node{
			{ID: "bank", X: 0, Y: 0, Type: navgraph.Bank},
			{ID: "far_a", X: 1000, Y: 1000, Type: navgraph.Generic},
			{ID: "far_b", X: 2000, Y: 2000, Type: navgraph.Generic},
		},
		Edges: []navgraph.Edge{
			{From: "far_a", To: "far_b", Type: navgraph.Walk, CostTicks: 20, Bidirectional: true},
		},
	}, nil, navgraph.PlaneTransitionSet{})
	require.NoError(t, err)
	search := graphsearch.New(g)
	return coordinator.New(pf, cache, search, g, fakeSupplier{})
}

func TestPathCost_SamePoint(t *testing.T) {
	c := newCoordinator(t)
	out, err := c.PathCost(context.Background(), geom.Tile{X: 5, Y: 5}, geom.Tile{X: 5, Y: 5})
	require.NoError(t, err)
	assert.Equal(t, coordinator.Known, out.Status)
	assert.EqualValues(t, 0, out.Cost)
}

func TestPathCost_LocalTilePath(t *testing.T) {
	c := newCoordinator(t)
	out, err := c.PathCost(context.Background(), geom.Tile{X: 0, Y: 0}, geom.Tile{X: 4, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, coordinator.Known, out.Status)
	assert.EqualValues(t, 4, out.Cost)
}

func TestPathCost_GraphTierEventuallyResolves(t *testing.T) {
	c := newCoordinator(t)
	from := geom.Tile{X: 1000, Y: 1000}
	to := geom.Tile{X: 2000, Y: 2000}

	out, err := c.PathCost(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, coordinator.Pending, out.Status)

	require.Eventually(t, func() bool {
		out, err = c.PathCost(context.Background(), from, to)
		require.NoError(t, err)
		return out.Status == coordinator.Known
	}, 2*time.Second, 5*time.Millisecond)

	assert.EqualValues(t, 20, out.Cost)
}

func TestClearPath_ResetsSlot(t *testing.T) {
	c := newCoordinator(t)
	from := geom.Tile{X: 1000, Y: 1000}
	to := geom.Tile{X: 2000, Y: 2000}

	_, err := c.PathCost(context.Background(), from, to)
	require.NoError(t, err)

	c.ClearPath()

	require.Eventually(t, func() bool {
		out, err := c.PathCost(context.Background(), from, to)
		require.NoError(t, err)
		return out.Status == coordinator.Known || out.Status == coordinator.Pending
	}, 2*time.Second, 5*time.Millisecond)
}
