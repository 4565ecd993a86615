package reach

import "github.com/arveldin/wayfarer/geom"

var neighborOffsets8 = [8][2]int32{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// Footprint computes the set of tiles obj occupies, memoized by
// (ObjectID, Orientation, Origin). Odd orientation transposes sizeX/sizeY.
func (c *Checker) Footprint(obj ObjectRef) []geom.Tile {
	key := footprintKey{id: obj.ID, orientation: obj.Orientation, origin: obj.Origin}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.footprint[key]; ok {
		return cached
	}

	sx, sy := obj.SizeX, obj.SizeY
	if obj.Orientation%2 != 0 {
		sx, sy = sy, sx
	}
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}

	tiles := make([]geom.Tile, 0, sx*sy)
	for dx := int32(0); dx < sx; dx++ {
		for dy := int32(0); dy < sy; dy++ {
			tiles = append(tiles, geom.Tile{X: obj.Origin.X + dx, Y: obj.Origin.Y + dy, Z: obj.Origin.Z})
		}
	}

	c.footprint[key] = tiles
	return tiles
}

// CanInteractObject reports whether player can interact with obj: some
// footprint tile is Chebyshev-adjacent to player on the same plane, and
// either obj is a boundary object or CanStep permits the approach.
func (c *Checker) CanInteractObject(player geom.Tile, obj ObjectRef) bool {
	for _, t := range c.Footprint(obj) {
		if !geom.SamePlane(player, t) {
			continue
		}
		if geom.Equal(player, t) {
			// The player's own tile is part of the footprint (shouldn't
			// normally happen for a solid object, but is not an error).
			return true
		}
		if geom.Chebyshev(player, t) > 1 {
			continue
		}
		if obj.Boundary || c.oracle.CanStep(player, t) {
			return true
		}
	}
	return false
}

// CanInteractTile reports whether player can interact with a 1x1 entity
// occupying target: true if player stands on target, else if target is
// adjacent and either boundary is true or CanStep permits the approach.
func (c *Checker) CanInteractTile(player, target geom.Tile, boundary bool) bool {
	if geom.Equal(player, target) {
		return true
	}
	if !geom.SamePlane(player, target) || geom.Chebyshev(player, target) > 1 {
		return false
	}
	return boundary || c.oracle.CanStep(player, target)
}

// LineOfSight delegates to the underlying collision.Oracle.
func (c *Checker) LineOfSight(a, b geom.Tile) bool {
	return c.oracle.LineOfSight(a, b)
}

// FindAttackablePosition locates a tile from which player could attack
// target within weaponRange: if player is already in range with
// LOS, player's own tile is returned. Otherwise the 8 tiles adjacent to
// player are searched, and the one closest to target that is step-reachable
// from player and has LOS to target is returned.
func (c *Checker) FindAttackablePosition(player, target geom.Tile, weaponRange int32) (geom.Tile, bool) {
	if geom.SamePlane(player, target) && geom.Chebyshev(player, target) <= weaponRange && c.oracle.LineOfSight(player, target) {
		return player, true
	}

	var best geom.Tile
	bestDist := int32(-1)
	found := false
	for _, off := range neighborOffsets8 {
		cand := geom.Tile{X: player.X + off[0], Y: player.Y + off[1], Z: player.Z}
		if !c.oracle.CanStep(player, cand) {
			continue
		}
		if !c.oracle.LineOfSight(cand, target) {
			continue
		}
		d := geom.Chebyshev(cand, target)
		if !found || d < bestDist {
			best, bestDist, found = cand, d, true
		}
	}
	return best, found
}
