package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/arveldin/wayfarer/geom"
	"github.com/arveldin/wayfarer/graphsearch"
	"github.com/arveldin/wayfarer/navgraph"
	"github.com/arveldin/wayfarer/navpolicy"
	"github.com/arveldin/wayfarer/pathcache"
	"github.com/arveldin/wayfarer/tilepath"
)

// costPerTile approximates the tick cost of one manual (first-/last-mile)
// tile step, using the same cardinal weight tilepath.FindPath uses.
const costPerTile = 10

// sceneRadius bounds the local tile-pathfinder attempt the coordinator
// makes before falling back to the cache/graph tiers; a destination
// farther than this is out of scene.
const sceneRadius = 52

// Status tags a coordinator Outcome.
type Status int

const (
	Known Status = iota
	Pending
	// Unreachable means the async graph search completed and found no
	// route under current requirements — distinct from Pending ("not yet
	// known"), which means the search has not finished.
	Unreachable
)

// Outcome is the result of a PathCost call.
type Outcome struct {
	Status Status
	Cost   int64
}

// ResourceSupplier gives the coordinator a fresh PlayerRequirements and
// ResourcePolicy pair at async-request-scheduling time, so each scheduled
// search sees the resource state current when it was requested.
// Implementations live outside this module.
type ResourceSupplier interface {
	Snapshot() (navpolicy.PlayerRequirements, navpolicy.ResourcePolicy)
}

// Coordinator is the top-level dispatcher for cost queries.
type Coordinator struct {
	pathfinder *tilepath.Pathfinder
	cache      *pathcache.Cache
	search     *graphsearch.Search
	graph      *navgraph.Graph
	resources  ResourceSupplier
	log        *slog.Logger

	group singleflight.Group

	mu           sync.Mutex
	inFlightKey  string
	inFlightChan <-chan singleflight.Result
	cancelFn     context.CancelFunc
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// New constructs a Coordinator wired to its three tiers.
func New(pathfinder *tilepath.Pathfinder, cache *pathcache.Cache, search *graphsearch.Search, graph *navgraph.Graph, resources ResourceSupplier, opts ...Option) *Coordinator {
	c := &Coordinator{
		pathfinder: pathfinder,
		cache:      cache,
		search:     search,
		graph:      graph,
		resources:  resources,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func tileKey(from, to geom.Tile) string {
	return fmt.Sprintf("%d,%d,%d|%d,%d,%d", from.X, from.Y, from.Z, to.X, to.Y, to.Z)
}
