package trainingspot

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/arveldin/wayfarer/coordinator"
	"github.com/arveldin/wayfarer/geom"
)

// ErrNoBankLocator is returned when bankRequired is set but the Ranker was
// constructed without a BankLocator.
var ErrNoBankLocator = errors.New("trainingspot: banking requested but no bank locator configured")

// ErrNoBankFound is returned when bankRequired is set and the BankLocator
// could not resolve any bank near ref.
var ErrNoBankFound = errors.New("trainingspot: no bank found near reference point")

// Rank orders the training objects named by objectIDs (or, if objectIDs is
// empty, every object within radius of ref in region) by path cost:
//
//  1. scan the spatial index for candidates;
//  2. if bankRequired, resolve the nearest bank to ref; otherwise rank
//     directly by path_cost(ref, candidate);
//  3. in banking mode, cost is path_cost(candidate, bank) +
//     path_cost(bank, candidate) — both directions, since tolls and
//     shortcuts can be directional;
//  4. drop candidates with unknown cost;
//  5. sort ascending and cap to maxCandidates;
//  6. persist the result through the store, which owns expiry.
func (r *Ranker) Rank(ctx context.Context, region string, objectIDs []string, ref geom.Tile, radius int32, bankRequired bool) ([]Candidate, error) {
	key := cacheKey(region, objectIDs, bankRequired)
	if r.store != nil {
		if rec, ok, err := r.store.Load(key); err == nil && ok {
			return rec.Candidates, nil
		}
	}

	var pool []TrainingObject
	if len(objectIDs) > 0 {
		pool = r.index.byIDs(objectIDs)
	} else {
		pool = r.index.near(region, ref, radius)
	}

	var bank geom.Tile
	haveBank := false
	if bankRequired {
		if r.banks == nil {
			return nil, ErrNoBankLocator
		}
		bank, haveBank = r.banks.NearestBank(ctx, ref)
		if !haveBank {
			return nil, ErrNoBankFound
		}
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, obj := range pool {
		if !bankRequired && radius > 0 && (!geom.SamePlane(ref, obj.Position) || geom.Chebyshev(ref, obj.Position) > radius) {
			continue
		}

		var cost int64
		var bankDistance int64
		if bankRequired {
			toBank, err := r.coster.PathCost(ctx, obj.Position, bank)
			if err != nil || toBank.Status != coordinator.Known {
				continue
			}
			fromBank, err := r.coster.PathCost(ctx, bank, obj.Position)
			if err != nil || fromBank.Status != coordinator.Known {
				continue
			}
			cost = toBank.Cost + fromBank.Cost
			bankDistance = toBank.Cost
		} else {
			outcome, err := r.coster.PathCost(ctx, ref, obj.Position)
			if err != nil || outcome.Status != coordinator.Known {
				continue
			}
			cost = outcome.Cost
		}

		candidates = append(candidates, Candidate{
			Tile:         obj.Position,
			ObjectID:     obj.ID,
			Cost:         cost,
			BankDistance: bankDistance,
		})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Cost < candidates[j].Cost })
	if len(candidates) > maxCandidates {
		r.log.Debug("trainingspot ranking truncated", "dropped", len(candidates)-maxCandidates)
		candidates = candidates[:maxCandidates]
	}

	if r.store != nil {
		var bankAnchor *geom.Tile
		if haveBank {
			bankAnchor = &bank
		}
		if err := r.store.Save(key, Record{
			Candidates: candidates,
			BankAnchor: bankAnchor,
			InsertedAt: time.Now(),
		}); err != nil {
			r.log.Warn("trainingspot cache save failed", "err", err)
		}
	}

	return candidates, nil
}
