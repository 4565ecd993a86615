package obstacle

import (
	"log/slog"

	"github.com/arveldin/wayfarer/collision"
	"github.com/arveldin/wayfarer/geom"
)

// Obstacle describes a boundary object blocking movement between two tiles
// and the menu action that would resolve it.
type Obstacle struct {
	ObjectID string
	Action   string
	// Position is the tile the blocking object occupies.
	Position geom.Tile
}

// BoundaryObject is one interactable wall-like object known to the scene.
type BoundaryObject struct {
	ID       string
	Position geom.Tile
	// Action is the interaction that clears the obstruction ("Open", ...).
	Action string
}

// ObjectSource supplies the boundary objects present at a tile. Implemented
// by the surrounding runtime's scene inspection; the core only reads it.
type ObjectSource interface {
	BoundaryObjectsAt(t geom.Tile) []BoundaryObject
}

// Handler inspects failed steps for interactable obstructions.
type Handler struct {
	oracle  *collision.Oracle
	objects ObjectSource
	log     *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// New constructs a Handler over oracle and objects.
func New(oracle *collision.Oracle, objects ObjectSource, opts ...Option) *Handler {
	h := &Handler{oracle: oracle, objects: objects, log: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Detect reports the boundary object blocking a step from from to to, if
// one exists. A passable step, a non-adjacent pair, or a blocked step with
// no interactable object on either endpoint all return ok=false: only a
// step that an interaction could actually clear yields a descriptor.
func (h *Handler) Detect(from, to geom.Tile) (Obstacle, bool) {
	if !geom.Adjacent(from, to) {
		return Obstacle{}, false
	}
	if h.oracle.CanStep(from, to) {
		return Obstacle{}, false
	}
	if h.objects == nil {
		return Obstacle{}, false
	}

	// A door or gate registers on one of the two tiles sharing the blocked
	// edge; check the destination first since that is where a closed door
	// usually sits relative to the walker.
	for _, t := range []geom.Tile{to, from} {
		for _, obj := range h.objects.BoundaryObjectsAt(t) {
			action := obj.Action
			if action == "" {
				action = "Open"
			}
			h.log.Debug("obstacle: blocking boundary object found",
				"object", obj.ID, "x", t.X, "y", t.Y, "z", t.Z)
			return Obstacle{ObjectID: obj.ID, Action: action, Position: obj.Position}, true
		}
	}

	return Obstacle{}, false
}
