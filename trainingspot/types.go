package trainingspot

import (
	"context"
	"log/slog"
	"time"

	"github.com/arveldin/wayfarer/coordinator"
	"github.com/arveldin/wayfarer/geom"
)

// cellSize is the spatial index's cell edge length in tiles.
const cellSize = 64

// DefaultTTL is how long a cached ranking stays valid before a fresh scan
// is required.
const DefaultTTL = 7 * 24 * time.Hour

// maxCandidates caps the ranked result.
const maxCandidates = 10

// TrainingObject is one spatially-indexed scene object candidate.
type TrainingObject struct {
	ID       string
	Position geom.Tile
	Region   string
}

// Candidate is one ranked result.
type Candidate struct {
	Tile         geom.Tile
	ObjectID     string
	Cost         int64
	BankDistance int64 // only meaningful when bankRequired was set
}

// PathCoster is the path-cost capability Ranker needs; satisfied by
// *coordinator.Coordinator.
type PathCoster interface {
	PathCost(ctx context.Context, from, to geom.Tile) (coordinator.Outcome, error)
}

// BankLocator resolves the nearest bank to a reference point.
type BankLocator interface {
	NearestBank(ctx context.Context, ref geom.Tile) (geom.Tile, bool)
}

// Store persists ranking results keyed by a uint64 digest of
// (region, object ids, bank flag).
type Store interface {
	Load(key uint64) (Record, bool, error)
	Save(key uint64, rec Record) error
}

// Record is one persisted ranking.
type Record struct {
	RecordID   string // uuid.New() string, for log correlation only.
	Candidates []Candidate
	BankAnchor *geom.Tile
	InsertedAt time.Time
}

// Ranker ranks TrainingObject candidates by path cost. Result expiry is
// owned by the Store, which carries its own TTL; the Ranker never inspects
// record age itself.
type Ranker struct {
	index  *spatialIndex
	coster PathCoster
	banks  BankLocator
	store  Store
	log    *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Ranker) {
		if l != nil {
			r.log = l
		}
	}
}

// New constructs a Ranker over the given objects, path-cost source, bank
// locator, and persistent store.
func New(objects []TrainingObject, coster PathCoster, banks BankLocator, store Store, opts ...Option) *Ranker {
	r := &Ranker{
		index:  newSpatialIndex(objects),
		coster: coster,
		banks:  banks,
		store:  store,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
