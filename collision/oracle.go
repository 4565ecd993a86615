package collision

import "github.com/arveldin/wayfarer/geom"

// IsBlocked reports whether t carries FlagFullBlock (or is out of bounds,
// which is treated as blocked).
func (o *Oracle) IsBlocked(t geom.Tile) bool {
	if o == nil {
		return true
	}
	return o.flagAt(t).Has(geom.FlagFullBlock)
}

// CanStep reports whether an agent standing on from may step onto to.
//
// Preconditions: to must be Chebyshev-adjacent to from on the same plane;
// any other relationship (identical tiles, non-adjacent tiles, different
// planes) returns false — the safe default.
//
// Cardinal step: neither the source's outgoing directional flag nor the
// destination's reciprocal flag may be set, and the destination must not be
// fully blocked.
//
// Diagonal step: corner-cutting is disallowed. Both orthogonal neighbors
// (x+dx,y) and (x,y+dy) must not be fully blocked, and neither the source
// nor either orthogonal neighbor may carry a blocking flag in the direction
// that would cut the corner. The destination itself must not be fully
// blocked.
func (o *Oracle) CanStep(from, to geom.Tile) bool {
	if o == nil {
		return false
	}
	dir, ok := geom.DirectionOf(from, to)
	if !ok {
		o.log.Debug("collision: CanStep on non-adjacent tiles", "from", from, "to", to)
		return false
	}
	if o.IsBlocked(to) {
		return false
	}

	if !dir.Diagonal() {
		if o.flagAt(from).Has(geom.FlagFor(dir)) {
			return false
		}
		if o.flagAt(to).Has(geom.FlagFor(dir.Opposite())) {
			return false
		}
		return true
	}

	dx, dy := dir.Delta()
	cardX := geom.Tile{X: from.X + dx, Y: from.Y, Z: from.Z}
	cardY := geom.Tile{X: from.X, Y: from.Y + dy, Z: from.Z}
	if o.IsBlocked(cardX) || o.IsBlocked(cardY) {
		return false
	}

	xDir, _ := geom.DirectionOf(from, geom.Tile{X: from.X + dx, Y: from.Y, Z: from.Z})
	yDir, _ := geom.DirectionOf(from, geom.Tile{X: from.X, Y: from.Y + dy, Z: from.Z})
	if o.flagAt(from).Any(geom.FlagFor(xDir) | geom.FlagFor(yDir)) {
		return false
	}
	if o.flagAt(cardX).Has(geom.FlagFor(yDir)) || o.flagAt(cardY).Has(geom.FlagFor(xDir)) {
		return false
	}
	if o.flagAt(cardX).Has(geom.FlagFor(xDir.Opposite())) || o.flagAt(cardY).Has(geom.FlagFor(yDir.Opposite())) {
		return false
	}

	return true
}

// LineOfSight reports whether an unobstructed sight line exists between
// from and to, walking intermediate tiles with a Bresenham-style stepper
// and excluding both endpoints. Different planes always return false.
func (o *Oracle) LineOfSight(from, to geom.Tile) bool {
	if o == nil {
		return false
	}
	if !geom.SamePlane(from, to) {
		o.log.Debug("collision: LineOfSight across planes", "from", from, "to", to)
		return false
	}
	if geom.Equal(from, to) {
		return true
	}

	x0, y0 := int(from.X), int(from.Y)
	x1, y1 := int(to.X), int(to.Y)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		if x == x1 && y == y1 {
			break
		}
		if o.IsBlocked(geom.Tile{X: int32(x), Y: int32(y), Z: from.Z}) {
			return false
		}
	}

	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
