package trainingspot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arveldin/wayfarer/coordinator"
	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/trainingspot"
)

type fakeCoster struct {
	costs map[[2]geom.Tile]int64
}

func (f fakeCoster) PathCost(_ context.Context, from, to geom.Tile) (coordinator.Outcome, error) {
	cost, ok := f.costs[[2]geom.Tile{from, to}]
	if !ok {
		return coordinator.Outcome{Status: coordinator.Unreachable}, nil
	}
	return coordinator.Outcome{Status: coordinator.Known, Cost: cost}, nil
}

type fakeBank struct {
	tile geom.Tile
	ok   bool
}

func (f fakeBank) NearestBank(context.Context, geom.Tile) (geom.Tile, bool) { return f.tile, f.ok }

func objs() []trainingspot.TrainingObject {
	return []trainingspot.TrainingObject{
		{ID: "tree-1", Position: geom.Tile{X: 10, Y: 10}, Region: "varrock"},
		{ID: "tree-2", Position: geom.Tile{X: 12, Y: 10}, Region: "varrock"},
		{ID: "tree-3", Position: geom.Tile{X: 500, Y: 500}, Region: "varrock"},
		{ID: "rock-1", Position: geom.Tile{X: 10, Y: 10}, Region: "other"},
	}
}

func TestRank_OrdersByPathCostAscending(t *testing.T) {
	ref := geom.Tile{X: 0, Y: 0}
	coster := fakeCoster{costs: map[[2]geom.Tile]int64{
		{ref, {X: 10, Y: 10}}: 50,
		{ref, {X: 12, Y: 10}}: 10,
	}}
	r := trainingspot.New(objs(), coster, nil, trainingspot.NewMemStore(time.Hour))

	out, err := r.Rank(context.Background(), "varrock", nil, ref, 100, false)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "tree-2", out[0].ObjectID)
	assert.Equal(t, "tree-1", out[1].ObjectID)
}

func TestRank_DropsUnknownCostCandidates(t *testing.T) {
	ref := geom.Tile{X: 0, Y: 0}
	coster := fakeCoster{costs: map[[2]geom.Tile]int64{
		{ref, {X: 10, Y: 10}}: 50,
	}}
	r := trainingspot.New(objs(), coster, nil, trainingspot.NewMemStore(time.Hour))

	out, err := r.Rank(context.Background(), "varrock", nil, ref, 100, false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "tree-1", out[0].ObjectID)
}

func TestRank_RegionIsolatesCandidates(t *testing.T) {
	ref := geom.Tile{X: 0, Y: 0}
	coster := fakeCoster{costs: map[[2]geom.Tile]int64{
		{ref, {X: 10, Y: 10}}: 50,
	}}
	r := trainingspot.New(objs(), coster, nil, trainingspot.NewMemStore(time.Hour))

	out, err := r.Rank(context.Background(), "other", nil, ref, 100, false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "rock-1", out[0].ObjectID)
}

// Banking mode sums both directions of the candidate<->bank trip.
func TestRank_BankingModeSumsRoundTrip(t *testing.T) {
	ref := geom.Tile{X: 0, Y: 0}
	bank := geom.Tile{X: 100, Y: 100}
	tree1 := geom.Tile{X: 10, Y: 10}
	tree2 := geom.Tile{X: 12, Y: 10}

	coster := fakeCoster{costs: map[[2]geom.Tile]int64{
		{tree1, bank}: 30, {bank, tree1}: 20, // directional: 50 total
		{tree2, bank}: 10, {bank, tree2}: 10, // directional: 20 total
	}}
	r := trainingspot.New(objs(), coster, fakeBank{tile: bank, ok: true}, trainingspot.NewMemStore(time.Hour))

	out, err := r.Rank(context.Background(), "varrock", []string{"tree-1", "tree-2"}, ref, 0, true)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "tree-2", out[0].ObjectID)
	assert.EqualValues(t, 20, out[0].Cost)
	assert.Equal(t, "tree-1", out[1].ObjectID)
	assert.EqualValues(t, 50, out[1].Cost)
}

func TestRank_BankRequiredWithoutLocatorErrors(t *testing.T) {
	r := trainingspot.New(objs(), fakeCoster{}, nil, trainingspot.NewMemStore(time.Hour))
	_, err := r.Rank(context.Background(), "varrock", []string{"tree-1"}, geom.Tile{}, 0, true)
	assert.ErrorIs(t, err, trainingspot.ErrNoBankLocator)
}

func TestRank_CachesResult(t *testing.T) {
	ref := geom.Tile{X: 0, Y: 0}
	coster := fakeCoster{costs: map[[2]geom.Tile]int64{
		{ref, {X: 10, Y: 10}}: 50,
	}}
	store := trainingspot.NewMemStore(time.Hour)
	r := trainingspot.New(objs(), coster, nil, store)

	first, err := r.Rank(context.Background(), "varrock", nil, ref, 100, false)
	require.NoError(t, err)

	// Change the cost source; a cached result should still be served.
	r2 := trainingspot.New(objs(), fakeCoster{}, nil, store)
	second, err := r2.Rank(context.Background(), "varrock", nil, ref, 100, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
