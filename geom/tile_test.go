package geom_test

import (
	"testing"

	"github.com/arveldin/wayfarer/geom"
)

func TestChebyshevAndAdjacent(t *testing.T) {
	cases := []struct {
		a, b     geom.Tile
		dist     int32
		adjacent bool
	}{
		{geom.Tile{X: 0, Y: 0, Z: 0}, geom.Tile{X: 0, Y: 0, Z: 0}, 0, false},
		{geom.Tile{X: 0, Y: 0, Z: 0}, geom.Tile{X: 1, Y: 0, Z: 0}, 1, true},
		{geom.Tile{X: 0, Y: 0, Z: 0}, geom.Tile{X: 1, Y: 1, Z: 0}, 1, true},
		{geom.Tile{X: 0, Y: 0, Z: 0}, geom.Tile{X: 2, Y: 1, Z: 0}, 2, false},
		{geom.Tile{X: 0, Y: 0, Z: 0}, geom.Tile{X: 1, Y: 0, Z: 1}, 1, false}, // different plane
	}
	for _, c := range cases {
		if got := geom.Chebyshev(c.a, c.b); got != c.dist {
			t.Errorf("Chebyshev(%v,%v) = %d; want %d", c.a, c.b, got, c.dist)
		}
		if got := geom.Adjacent(c.a, c.b); got != c.adjacent {
			t.Errorf("Adjacent(%v,%v) = %v; want %v", c.a, c.b, got, c.adjacent)
		}
	}
}

func TestDirectionOf(t *testing.T) {
	d, ok := geom.DirectionOf(geom.Tile{X: 5, Y: 5, Z: 0}, geom.Tile{X: 6, Y: 4, Z: 0})
	if !ok || d != geom.NE {
		t.Fatalf("DirectionOf diagonal = (%v,%v); want (NE,true)", d, ok)
	}
	if _, ok := geom.DirectionOf(geom.Tile{X: 0, Y: 0, Z: 0}, geom.Tile{X: 2, Y: 0, Z: 0}); ok {
		t.Fatalf("DirectionOf non-adjacent should report ok=false")
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[geom.Direction]geom.Direction{
		geom.N: geom.S, geom.E: geom.W, geom.NE: geom.SW, geom.NW: geom.SE,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v; want %v", d, got, want)
		}
		if got := want.Opposite(); got != d {
			t.Errorf("%v.Opposite() = %v; want %v", want, got, d)
		}
	}
}

func TestBoundingBoxOf(t *testing.T) {
	tiles := []geom.Tile{{X: 2, Y: 3, Z: 0}, {X: -1, Y: 5, Z: 0}, {X: 4, Y: 1, Z: 0}}
	bb := geom.BoundingBoxOf(tiles)
	want := geom.BoundingBox{MinX: -1, MinY: 1, MaxX: 4, MaxY: 5}
	if bb != want {
		t.Fatalf("BoundingBoxOf = %+v; want %+v", bb, want)
	}
	if !bb.Contains(0, 4) {
		t.Errorf("expected box to contain (0,4)")
	}
	if bb.Contains(10, 10) {
		t.Errorf("expected box to not contain (10,10)")
	}
}

func TestCollisionFlagHasAny(t *testing.T) {
	f := geom.FlagBlockN | geom.FlagBlockE
	if !f.Has(geom.FlagBlockN) {
		t.Errorf("expected Has(FlagBlockN)")
	}
	if f.Has(geom.FlagBlockS) {
		t.Errorf("unexpected Has(FlagBlockS)")
	}
	if !f.Any(geom.FlagBlockS | geom.FlagBlockE) {
		t.Errorf("expected Any to match FlagBlockE")
	}
}
