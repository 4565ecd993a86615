package trainingspot

import "github.com/arveldin/wayfarer/geom"

// cellKey identifies one cell of the region-scoped grid.
type cellKey struct {
	region string
	cellX  int32
	cellY  int32
}

// spatialIndex buckets TrainingObjects into fixed-size cells per region so
// Rank can scan only the cells touching the search radius instead of every
// object in the scene.
type spatialIndex struct {
	cells map[cellKey][]TrainingObject
	byID  map[string]TrainingObject
}

func newSpatialIndex(objects []TrainingObject) *spatialIndex {
	idx := &spatialIndex{
		cells: make(map[cellKey][]TrainingObject),
		byID:  make(map[string]TrainingObject, len(objects)),
	}
	for _, obj := range objects {
		idx.insert(obj)
	}
	return idx
}

func (idx *spatialIndex) insert(obj TrainingObject) {
	key := cellOf(obj.Region, obj.Position)
	idx.cells[key] = append(idx.cells[key], obj)
	idx.byID[obj.ID] = obj
}

func cellOf(region string, t geom.Tile) cellKey {
	return cellKey{region: region, cellX: floorDiv(t.X, cellSize), cellY: floorDiv(t.Y, cellSize)}
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// near returns every indexed object in region whose position is within
// radius tiles (Chebyshev) of ref, scanning only the cells the radius can
// reach.
func (idx *spatialIndex) near(region string, ref geom.Tile, radius int32) []TrainingObject {
	reachCells := radius/cellSize + 1
	centerX, centerY := floorDiv(ref.X, cellSize), floorDiv(ref.Y, cellSize)

	var out []TrainingObject
	for dx := -reachCells; dx <= reachCells; dx++ {
		for dy := -reachCells; dy <= reachCells; dy++ {
			key := cellKey{region: region, cellX: centerX + dx, cellY: centerY + dy}
			for _, obj := range idx.cells[key] {
				if geom.SamePlane(ref, obj.Position) && geom.Chebyshev(ref, obj.Position) <= radius {
					out = append(out, obj)
				}
			}
		}
	}
	return out
}

// byIDs filters the index to objects whose ID is in ids, ignoring region
// and radius.
func (idx *spatialIndex) byIDs(ids []string) []TrainingObject {
	out := make([]TrainingObject, 0, len(ids))
	for _, id := range ids {
		if obj, ok := idx.byID[id]; ok {
			out = append(out, obj)
		}
	}
	return out
}
