package collision

import (
	"errors"
	"log/slog"

	"github.com/arveldin/wayfarer/geom"
)

// Sentinel errors for Oracle construction.
var (
	// ErrEmptyGrid indicates the supplied collision grid has no rows or columns.
	ErrEmptyGrid = errors.New("collision: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths within a plane.
	ErrNonRectangular = errors.New("collision: all rows within a plane must have the same length")
	// ErrPlaneMismatch indicates planes of differing dimensions.
	ErrPlaneMismatch = errors.New("collision: all planes must share the same width and height")
	// ErrTooManyPlanes indicates more planes were supplied than geom.MaxPlane+1 allows.
	ErrTooManyPlanes = errors.New("collision: at most geom.MaxPlane+1 planes are supported")
)

// Oracle answers read-only questions about tile passability. It is built
// once from a dense per-plane grid and never mutated afterward.
type Oracle struct {
	width, height int
	// flags[z][y*width+x] holds the CollisionFlag bitfield for that tile.
	flags [][]geom.CollisionFlag
	log   *slog.Logger
}

// Option configures Oracle construction.
type Option func(*Oracle)

// WithLogger attaches a structured logger used for trace-level diagnostics
// on invalid-input paths. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Oracle) {
		if l != nil {
			o.log = l
		}
	}
}

// NewOracle builds an Oracle from a rectangular grid of CollisionFlag values
// per plane: planes[z][y][x]. The input is deep-copied so later mutation of
// the caller's slices does not affect the Oracle.
//
// Returns ErrEmptyGrid if planes has no planes or the first plane has no
// rows/columns, ErrNonRectangular if rows within a plane differ in length,
// ErrPlaneMismatch if planes differ in width/height, ErrTooManyPlanes if
// len(planes) > geom.MaxPlane+1.
func NewOracle(planes [][][]geom.CollisionFlag, opts ...Option) (*Oracle, error) {
	if len(planes) == 0 || len(planes[0]) == 0 || len(planes[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(planes) > geom.MaxPlane+1 {
		return nil, ErrTooManyPlanes
	}
	height := len(planes[0])
	width := len(planes[0][0])
	flat := make([][]geom.CollisionFlag, len(planes))
	for z, plane := range planes {
		if len(plane) != height {
			return nil, ErrPlaneMismatch
		}
		row := make([]geom.CollisionFlag, width*height)
		for y, r := range plane {
			if len(r) != len(plane[0]) {
				return nil, ErrNonRectangular
			}
			if len(r) != width {
				return nil, ErrPlaneMismatch
			}
			copy(row[y*width:(y+1)*width], r)
		}
		flat[z] = row
	}

	o := &Oracle{width: width, height: height, flags: flat, log: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// inBounds reports whether (x,y,z) is within the Oracle's dimensions.
func (o *Oracle) inBounds(t geom.Tile) bool {
	return t.X >= 0 && t.X < int32(o.width) &&
		t.Y >= 0 && t.Y < int32(o.height) &&
		int(t.Z) >= 0 && int(t.Z) < len(o.flags)
}

// flagAt returns the CollisionFlag at t, or FlagFullBlock if out of bounds
// — the safe default for an invalid query.
func (o *Oracle) flagAt(t geom.Tile) geom.CollisionFlag {
	if !o.inBounds(t) {
		return geom.FlagFullBlock
	}
	return o.flags[int(t.Z)][t.Y*int32(o.width)+t.X]
}
