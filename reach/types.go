package reach

import (
	"log/slog"
	"sync"

	"github.com/arveldin/wayfarer/collision"
	"github.com/arveldin/wayfarer/geom"
)

// ObjectRef describes a world object footprint query: its origin tile,
// size, orientation, and whether it is a boundary (wall/decorative) object.
// Interaction is allowed adjacent to a boundary tile even though the tile
// itself blocks movement.
type ObjectRef struct {
	ID           string
	Origin       geom.Tile
	SizeX, SizeY int32
	Orientation  int
	Boundary     bool
}

// footprintKey caches by (ObjectID, Orientation, Origin), not just
// (ObjectID, Orientation): two instances of the same object id at
// different positions have different footprints.
type footprintKey struct {
	id          string
	orientation int
	origin      geom.Tile
}

// Checker validates interaction adjacency against a collision.Oracle.
type Checker struct {
	oracle *collision.Oracle
	log    *slog.Logger

	mu        sync.Mutex
	footprint map[footprintKey][]geom.Tile
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.log = l
		}
	}
}

// New constructs a Checker over oracle.
func New(oracle *collision.Oracle, opts ...Option) *Checker {
	c := &Checker{
		oracle:    oracle,
		log:       slog.Default(),
		footprint: make(map[footprintKey][]geom.Tile),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
