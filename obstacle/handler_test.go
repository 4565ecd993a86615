package obstacle_test

import (
	"testing"

	"github.com/arveldin/wayfarer/collision"
	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/obstacle"
)

type staticObjects map[geom.Tile][]obstacle.BoundaryObject

func (s staticObjects) BoundaryObjectsAt(t geom.Tile) []obstacle.BoundaryObject {
	return s[t]
}

func clearGrid(w, h int) [][]geom.CollisionFlag {
	plane := make([][]geom.CollisionFlag, h)
	for y := range plane {
		plane[y] = make([]geom.CollisionFlag, w)
	}
	return plane
}

func TestDetect_DoorOnBlockedEdge(t *testing.T) {
	plane := clearGrid(5, 5)
	plane[2][2] = geom.FlagBlockE // a closed door on (2,2) facing east
	o, err := collision.NewOracle([][][]geom.CollisionFlag{plane})
	if err != nil {
		t.Fatalf("NewOracle: %v", err)
	}

	door := geom.Tile{X: 2, Y: 2, Z: 0}
	objects := staticObjects{
		door: {{ID: "door_1", Position: door, Action: "Open"}},
	}
	h := obstacle.New(o, objects)

	got, ok := h.Detect(door, geom.Tile{X: 3, Y: 2, Z: 0})
	if !ok {
		t.Fatalf("expected a descriptor for the blocked eastward step")
	}
	if got.ObjectID != "door_1" || got.Action != "Open" {
		t.Fatalf("got %+v; want door_1/Open", got)
	}
}

func TestDetect_PassableStepYieldsNothing(t *testing.T) {
	o, _ := collision.NewOracle([][][]geom.CollisionFlag{clearGrid(5, 5)})
	h := obstacle.New(o, staticObjects{})

	if _, ok := h.Detect(geom.Tile{X: 1, Y: 1, Z: 0}, geom.Tile{X: 2, Y: 1, Z: 0}); ok {
		t.Fatalf("a passable step must not produce a descriptor")
	}
}

func TestDetect_BlockedWithoutObjectYieldsNothing(t *testing.T) {
	plane := clearGrid(5, 5)
	plane[2][3] = geom.FlagFullBlock
	o, _ := collision.NewOracle([][][]geom.CollisionFlag{plane})
	h := obstacle.New(o, staticObjects{})

	if _, ok := h.Detect(geom.Tile{X: 2, Y: 2, Z: 0}, geom.Tile{X: 3, Y: 2, Z: 0}); ok {
		t.Fatalf("a plain wall with no interactable object must not produce a descriptor")
	}
}

func TestDetect_NonAdjacentYieldsNothing(t *testing.T) {
	o, _ := collision.NewOracle([][][]geom.CollisionFlag{clearGrid(5, 5)})
	h := obstacle.New(o, staticObjects{})

	if _, ok := h.Detect(geom.Tile{X: 0, Y: 0, Z: 0}, geom.Tile{X: 3, Y: 0, Z: 0}); ok {
		t.Fatalf("non-adjacent tiles must not produce a descriptor")
	}
}

func TestDetect_DefaultActionIsOpen(t *testing.T) {
	plane := clearGrid(5, 5)
	plane[2][2] = geom.FlagBlockN
	o, _ := collision.NewOracle([][][]geom.CollisionFlag{plane})

	gate := geom.Tile{X: 2, Y: 1, Z: 0}
	objects := staticObjects{
		gate: {{ID: "gate_9", Position: gate}},
	}
	h := obstacle.New(o, objects)

	got, ok := h.Detect(geom.Tile{X: 2, Y: 2, Z: 0}, gate)
	if !ok || got.Action != "Open" {
		t.Fatalf("got %+v ok=%v; want default Open action", got, ok)
	}
}
