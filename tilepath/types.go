package tilepath

import (
	"errors"
	"log/slog"

	"github.com/arveldin/wayfarer/collision"
	"github.com/arveldin/wayfarer/geom"
)

// Search bounds.
const (
	// MaxPathLength is the Chebyshev distance beyond which FindPath refuses
	// to search locally; callers must fall back to the global graph search.
	MaxPathLength = 100
	// MaxIterations bounds the number of node expansions per search.
	MaxIterations = 5000

	costCardinal = 10
	costDiagonal = 14
)

// Sentinel errors.
var (
	// ErrDifferentPlanes indicates start and end are not on the same plane.
	ErrDifferentPlanes = errors.New("tilepath: start and end must be on the same plane")
	// ErrTooFar indicates the Chebyshev distance exceeds MaxPathLength.
	ErrTooFar = errors.New("tilepath: distance exceeds MaxPathLength")
)

// Stats reports the outcome of the most recently run search, useful for
// callers tuning MaxIterations or diagnosing cap hits.
type Stats struct {
	Expanded int
	CapHit   bool
}

// Option configures a Pathfinder or a single FindPath call.
type Option func(*options)

type options struct {
	ignoreCache bool
	smoothing   bool
}

// WithIgnoreCache bypasses the single-slot cached result for this call.
func WithIgnoreCache() Option {
	return func(o *options) { o.ignoreCache = true }
}

// WithSmoothing enables the optional line-of-sight waypoint smoothing pass.
// Off by default; smoothing changes the returned tiles but not the cost
// formula the search optimizes.
func WithSmoothing() Option {
	return func(o *options) { o.smoothing = true }
}

// Pathfinder runs A* over a collision.Oracle. It is not safe for concurrent
// use: FindPath writes the single-slot cache and the LastStats record
// without locking.
type Pathfinder struct {
	oracle *collision.Oracle
	log    *slog.Logger

	lastStart, lastEnd geom.Tile
	lastPath           []geom.Tile
	haveCached         bool

	lastStats Stats
}

// PathfinderOption configures a Pathfinder at construction time.
type PathfinderOption func(*Pathfinder)

// WithLogger attaches a structured logger for iteration-cap and bounded
// impossibility diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) PathfinderOption {
	return func(p *Pathfinder) {
		if l != nil {
			p.log = l
		}
	}
}

// New constructs a Pathfinder over oracle.
func New(oracle *collision.Oracle, opts ...PathfinderOption) *Pathfinder {
	p := &Pathfinder{oracle: oracle, log: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LastStats returns statistics from the most recent FindPath call.
func (p *Pathfinder) LastStats() Stats {
	return p.lastStats
}

// InvalidateCache clears the single-slot cached result.
func (p *Pathfinder) InvalidateCache() {
	p.haveCached = false
	p.lastPath = nil
}
