package coordinator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arveldin/wayfarer/geom"
)

// ErrNoPath marks a completed async graph search that found no route; the
// coordinator folds it into an Unreachable Outcome rather than escalating
// an error to the caller.
var ErrNoPath = errors.New("coordinator: no path between nearest graph nodes")

// PathCost returns either a known integer cost or Pending ("not yet
// known"), through a tiered lookup:
//
//  1. from == to -> 0.
//  2. Local tile pathfinder, if to is within sceneRadius.
//  3. PathCostCache.
//  4. A previously scheduled async request for this exact pair, if done.
//  5. Otherwise: schedule one if the single slot is free, else stay Pending.
func (c *Coordinator) PathCost(ctx context.Context, from, to geom.Tile) (Outcome, error) {
	if geom.Equal(from, to) {
		return Outcome{Status: Known, Cost: 0}, nil
	}

	if geom.SamePlane(from, to) && geom.Chebyshev(from, to) <= sceneRadius {
		path, err := c.pathfinder.FindPath(from, to)
		if err != nil {
			return Outcome{}, err
		}
		if len(path) > 0 {
			return Outcome{Status: Known, Cost: int64(len(path) - 1)}, nil
		}
	}

	key := tileKey(from, to)
	now := time.Now()
	if entry, ok := c.cache.Get(key, from, now); ok {
		return Outcome{Status: Known, Cost: entry.Cost}, nil
	}

	return c.pollOrSchedule(ctx, key, from, to, now)
}

// pollOrSchedule drains a completed async result into the cache if ready,
// and otherwise either stays Pending (a different key is already in
// flight) or starts the one-and-only in-flight request.
func (c *Coordinator) pollOrSchedule(ctx context.Context, key string, from, to geom.Tile, now time.Time) (Outcome, error) {
	c.mu.Lock()

	if c.inFlightChan != nil {
		select {
		case res := <-c.inFlightChan:
			doneKey := c.inFlightKey
			c.inFlightChan = nil
			c.inFlightKey = ""
			c.cancelFn = nil
			c.mu.Unlock()

			var cost int64
			switch {
			case res.Err == nil:
				cost = res.Val.(int64)
				c.cache.Insert(doneKey, cost, int(cost), from, now)
			case errors.Is(res.Err, ErrNoPath):
				// Unreachable is not cached: a later edit to requirements
				// or resources can change the outcome on the next poll.
			default:
				c.log.Warn("coordinator: async graph search failed", "key", doneKey, "err", res.Err)
			}

			if doneKey == key {
				switch {
				case res.Err == nil:
					return Outcome{Status: Known, Cost: cost}, nil
				case errors.Is(res.Err, ErrNoPath):
					return Outcome{Status: Unreachable}, nil
				default:
					return Outcome{Status: Pending}, nil
				}
			}
			// The completed request was for a different pair; this call's
			// key is still unresolved and the slot is now free — fall
			// through to schedule it.
		default:
			c.mu.Unlock()
			return Outcome{Status: Pending}, nil
		}
		c.mu.Lock()
	}

	reqID := uuid.NewString()
	c.log.Debug("coordinator: scheduling async graph search", "request_id", reqID, "key", key)

	searchCtx, cancel := context.WithCancel(ctx)
	resultCh := c.group.DoChan(key, func() (interface{}, error) {
		return c.runGraphSearch(searchCtx, from, to)
	})
	c.inFlightKey = key
	c.inFlightChan = resultCh
	c.cancelFn = cancel
	c.mu.Unlock()

	return Outcome{Status: Pending}, nil
}

// runGraphSearch resolves the nearest graph nodes to from/to, runs the
// global Dijkstra search, and folds first-/last-mile manual distance into
// a single tick cost.
func (c *Coordinator) runGraphSearch(ctx context.Context, from, to geom.Tile) (interface{}, error) {
	reqs, policy := c.resources.Snapshot()

	startNode, ok := c.graph.NearestNodeAnyPlane(from)
	if !ok {
		return int64(0), nil
	}
	endNode, ok := c.graph.NearestNodeAnyPlane(to)
	if !ok {
		return int64(0), nil
	}

	result, err := c.search.FindPath(ctx, startNode.ID, endNode.ID, reqs, policy)
	if err != nil {
		return nil, err
	}
	if len(result.Edges) == 0 && startNode.ID != endNode.ID {
		return nil, ErrNoPath
	}

	firstMile := int64(geom.Chebyshev(from, geom.Tile{X: startNode.X, Y: startNode.Y, Z: startNode.Z})) * costPerTile
	lastMile := int64(geom.Chebyshev(to, geom.Tile{X: endNode.X, Y: endNode.Y, Z: endNode.Z})) * costPerTile

	return firstMile + result.TotalCost + lastMile, nil
}

// ClearPath cancels the in-flight async request, if any, and forgets the
// single slot and its singleflight key.
func (c *Coordinator) ClearPath() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelFn != nil {
		c.cancelFn()
	}
	if c.inFlightKey != "" {
		c.group.Forget(c.inFlightKey)
	}
	c.inFlightChan = nil
	c.inFlightKey = ""
	c.cancelFn = nil
}
