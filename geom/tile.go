package geom

// MaxPlane is the highest valid Z value a Tile may carry.
const MaxPlane = 3

// Tile is a single cell of the world grid: an (x, y) coordinate on a plane z.
// Two tiles are adjacent iff max(|dx|,|dy|) == 1 and dz == 0; distance between
// same-plane tiles is Chebyshev.
type Tile struct {
	X, Y, Z int32
}

// ValidPlane reports whether z is within [0, MaxPlane].
func ValidPlane(z int32) bool {
	return z >= 0 && z <= MaxPlane
}

// SamePlane reports whether a and b share a Z coordinate.
func SamePlane(a, b Tile) bool {
	return a.Z == b.Z
}

// Chebyshev returns max(|dx|, |dy|) between a and b, ignoring plane. Callers
// that require same-plane semantics must check SamePlane separately.
func Chebyshev(a, b Tile) int32 {
	dx := absInt32(a.X - b.X)
	dy := absInt32(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Adjacent reports whether a and b are Chebyshev-adjacent on the same plane.
func Adjacent(a, b Tile) bool {
	if !SamePlane(a, b) {
		return false
	}
	dx := absInt32(a.X - b.X)
	dy := absInt32(a.Y - b.Y)

	return dx <= 1 && dy <= 1 && (dx+dy) > 0
}

// Equal reports exact coordinate equality.
func Equal(a, b Tile) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

func absInt32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// BoundingBox is an axis-aligned rectangle in tile space, used by
// reachability footprints and the training-spot spatial index.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY int32
}

// Contains reports whether (x,y) lies within the box, inclusive of bounds.
func (b BoundingBox) Contains(x, y int32) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// BoundingBoxOf computes the smallest BoundingBox enclosing tiles. Returns
// the zero value if tiles is empty.
func BoundingBoxOf(tiles []Tile) BoundingBox {
	if len(tiles) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{MinX: tiles[0].X, MinY: tiles[0].Y, MaxX: tiles[0].X, MaxY: tiles[0].Y}
	for _, t := range tiles[1:] {
		if t.X < bb.MinX {
			bb.MinX = t.X
		}
		if t.X > bb.MaxX {
			bb.MaxX = t.X
		}
		if t.Y < bb.MinY {
			bb.MinY = t.Y
		}
		if t.Y > bb.MaxY {
			bb.MaxY = t.Y
		}
	}

	return bb
}
