package entityfinder

import (
	"context"
	"log/slog"

	"github.com/arveldin/wayfarer/coordinator"
	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/reach"
)

// PathCoster is the path-cost capability EntityFinder needs; satisfied by
// *coordinator.Coordinator.
type PathCoster interface {
	PathCost(ctx context.Context, from, to geom.Tile) (coordinator.Outcome, error)
}

// ReachChecker is the interaction-adjacency capability EntityFinder needs;
// satisfied by *reach.Checker. The finder runs its own perimeter scan for
// ranged attack positions, so only adjacency and sight checks are required
// here.
type ReachChecker interface {
	Footprint(obj reach.ObjectRef) []geom.Tile
	CanInteractObject(player geom.Tile, obj reach.ObjectRef) bool
	CanInteractTile(player, target geom.Tile, boundary bool) bool
	LineOfSight(a, b geom.Tile) bool
}

// CollisionReader is the minimal blocked-tile capability EntityFinder needs
// for the ranged perimeter search; satisfied by *collision.Oracle.
type CollisionReader interface {
	IsBlocked(t geom.Tile) bool
}

// ObjectEntity is a scene object candidate for NearestReachableObject.
type ObjectEntity struct {
	Ref     reach.ObjectRef
	Visible bool
}

// NPCEntity is a scene NPC candidate, mirroring navpolicy.NPC field for
// field.
type NPCEntity struct {
	ID       string
	Name     string
	Position geom.Tile
}

// ObjectResult is the outcome of NearestReachableObject.
type ObjectResult struct {
	Object ObjectEntity
	Tile   geom.Tile
	Cost   int64
}

// NPCResult is the outcome of NearestReachableNPC / NearestAttackableNPC.
type NPCResult struct {
	NPC  NPCEntity
	Tile geom.Tile
	Cost int64
}

// Finder composes the three capabilities into the entity-search
// primitives.
type Finder struct {
	coster PathCoster
	reach  ReachChecker
	oracle CollisionReader
	log    *slog.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.log = l
		}
	}
}

// New wires a Finder from its three capabilities.
func New(coster PathCoster, reachChecker ReachChecker, oracle CollisionReader, opts ...Option) *Finder {
	f := &Finder{coster: coster, reach: reachChecker, oracle: oracle, log: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func containsID(ids []string, id string) bool {
	for _, want := range ids {
		if want == id {
			return true
		}
	}
	return false
}
