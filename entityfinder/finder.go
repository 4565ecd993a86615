package entityfinder

import (
	"context"

	"github.com/arveldin/wayfarer/coordinator"
	"github.com/arveldin/wayfarer/geom"
)

var neighborOffsets8 = [8][2]int32{
	{0, -1}, {0, 1}, {1, 0}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

func neighborsOf(t geom.Tile) []geom.Tile {
	out := make([]geom.Tile, 0, 8)
	for _, off := range neighborOffsets8 {
		out = append(out, geom.Tile{X: t.X + off[0], Y: t.Y + off[1], Z: t.Z})
	}
	return out
}

// NearestReachableObject finds the cheapest-to-reach object among objects
// whose id is in ids and whose origin is within radius of player.
// Unreachable candidates (unknown or infinite cost) are skipped.
func (f *Finder) NearestReachableObject(ctx context.Context, player geom.Tile, objects []ObjectEntity, ids []string, radius int32) (ObjectResult, bool) {
	var best ObjectResult
	found := false

	for _, obj := range objects {
		if !containsID(ids, obj.Ref.ID) {
			continue
		}
		if !geom.SamePlane(player, obj.Ref.Origin) || geom.Chebyshev(player, obj.Ref.Origin) > radius {
			continue
		}

		footprint := f.reach.Footprint(obj.Ref)
		candidateSet := map[geom.Tile]bool{}
		for _, ft := range footprint {
			for _, n := range neighborsOf(ft) {
				candidateSet[n] = true
			}
		}

		var bestTile geom.Tile
		bestCost := int64(-1)
		haveTile := false
		for t := range candidateSet {
			if !f.reach.CanInteractObject(t, obj.Ref) {
				continue
			}
			outcome, err := f.coster.PathCost(ctx, player, t)
			if err != nil || outcome.Status != coordinator.Known {
				continue
			}
			if !haveTile || betterObjectCandidate(outcome.Cost, t, bestCost, bestTile, player) {
				bestTile, bestCost, haveTile = t, outcome.Cost, true
			}
		}
		if !haveTile {
			continue
		}

		if !found || betterObject(bestCost, obj, bestTile, best, player) {
			best = ObjectResult{Object: obj, Tile: bestTile, Cost: bestCost}
			found = true
		}
	}

	return best, found
}

// betterObjectCandidate tie-breaks among standing tiles for the same
// object: lower cost wins, then smaller Chebyshev distance to player.
func betterObjectCandidate(cost int64, tile geom.Tile, bestCost int64, bestTile geom.Tile, player geom.Tile) bool {
	if cost != bestCost {
		return cost < bestCost
	}
	return geom.Chebyshev(player, tile) < geom.Chebyshev(player, bestTile)
}

// betterObject tie-breaks across objects: lower cost, then visible, then
// smaller Chebyshev distance.
func betterObject(cost int64, obj ObjectEntity, tile geom.Tile, best ObjectResult, player geom.Tile) bool {
	if cost != best.Cost {
		return cost < best.Cost
	}
	if obj.Visible != best.Object.Visible {
		return obj.Visible
	}
	return geom.Chebyshev(player, tile) < geom.Chebyshev(player, best.Tile)
}

// NearestReachableNPC finds the cheapest melee-adjacent tile to an NPC
// matching ids (and name, if non-empty) within radius.
func (f *Finder) NearestReachableNPC(ctx context.Context, player geom.Tile, npcs []NPCEntity, ids []string, name string, radius int32) (NPCResult, bool) {
	var best NPCResult
	found := false

	for _, npc := range npcs {
		if !containsID(ids, npc.ID) {
			continue
		}
		if name != "" && npc.Name != name {
			continue
		}
		if !geom.SamePlane(player, npc.Position) || geom.Chebyshev(player, npc.Position) > radius {
			continue
		}

		var bestTile geom.Tile
		bestCost := int64(-1)
		haveTile := false
		for _, t := range neighborsOf(npc.Position) {
			if !f.reach.CanInteractTile(t, npc.Position, false) {
				continue
			}
			outcome, err := f.coster.PathCost(ctx, player, t)
			if err != nil || outcome.Status != coordinator.Known {
				continue
			}
			if !haveTile || outcome.Cost < bestCost {
				bestTile, bestCost, haveTile = t, outcome.Cost, true
			}
		}
		if !haveTile {
			continue
		}

		if !found || bestCost < best.Cost {
			best = NPCResult{NPC: npc, Tile: bestTile, Cost: bestCost}
			found = true
		}
	}

	return best, found
}

// NearestAttackableNPC finds a ranged attack position for an NPC matching
// ids (and name) within radius: if the player is already within
// weaponRange with LOS, it stays put; otherwise it scans
// the perimeter square of radius weaponRange around the NPC outward,
// keeping the first tile that is not fully blocked, has LOS, and has a
// finite path cost from the player.
func (f *Finder) NearestAttackableNPC(ctx context.Context, player geom.Tile, npcs []NPCEntity, ids []string, name string, radius, weaponRange int32) (NPCResult, bool) {
	var best NPCResult
	found := false

	for _, npc := range npcs {
		if !containsID(ids, npc.ID) {
			continue
		}
		if name != "" && npc.Name != name {
			continue
		}
		if !geom.SamePlane(player, npc.Position) || geom.Chebyshev(player, npc.Position) > radius {
			continue
		}

		tile, cost, ok := f.attackPositionFor(ctx, player, npc.Position, weaponRange)
		if !ok {
			continue
		}
		if !found || cost < best.Cost {
			best = NPCResult{NPC: npc, Tile: tile, Cost: cost}
			found = true
		}
	}

	return best, found
}

func (f *Finder) attackPositionFor(ctx context.Context, player, target geom.Tile, weaponRange int32) (geom.Tile, int64, bool) {
	if geom.SamePlane(player, target) && geom.Chebyshev(player, target) <= weaponRange && f.reach.LineOfSight(player, target) {
		outcome, err := f.coster.PathCost(ctx, player, player)
		if err == nil && outcome.Status == coordinator.Known {
			return player, outcome.Cost, true
		}
	}

	for _, t := range perimeterSquare(target, weaponRange) {
		if f.oracle.IsBlocked(t) {
			continue
		}
		if !f.reach.LineOfSight(t, target) {
			continue
		}
		outcome, err := f.coster.PathCost(ctx, player, t)
		if err != nil || outcome.Status != coordinator.Known {
			continue
		}
		return t, outcome.Cost, true
	}

	return geom.Tile{}, 0, false
}

// perimeterSquare lists the tiles on the boundary of the square of the
// given Chebyshev radius around center, in a stable outward scan order
// (top edge left-to-right, right edge top-to-bottom, bottom edge
// right-to-left, left edge bottom-to-top).
func perimeterSquare(center geom.Tile, radius int32) []geom.Tile {
	if radius <= 0 {
		return nil
	}
	var out []geom.Tile
	top, bottom := center.Y-radius, center.Y+radius
	left, right := center.X-radius, center.X+radius

	for x := left; x <= right; x++ {
		out = append(out, geom.Tile{X: x, Y: top, Z: center.Z})
	}
	for y := top + 1; y <= bottom; y++ {
		out = append(out, geom.Tile{X: right, Y: y, Z: center.Z})
	}
	for x := right - 1; x >= left; x-- {
		out = append(out, geom.Tile{X: x, Y: bottom, Z: center.Z})
	}
	for y := bottom - 1; y > top; y-- {
		out = append(out, geom.Tile{X: left, Y: y, Z: center.Z})
	}
	return out
}
