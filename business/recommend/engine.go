package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gulhajiPlaza/domain"
	"gulhajiPlaza/pkg/logger"
)

// scoringFeatures is the fixed evaluation order: every snapshot feature
// plus the live price. Fixed order keeps float accumulation, and therefore
// the final ranking, reproducible.
var scoringFeatures = append([]string{FeatPrice}, snapshotFeatures...)

type rankedItem struct {
	item  SnapshotItem
	offer domain.LiveOffer
	score float64
}

// Rank runs the primary scoring path: hard filters, per-feature
// satisfaction, weighted average, deterministic ordering, top-K cut.
// Any failure, including a missing or stale snapshot and context
// expiry, is reported as ErrScoringUnavailable; no partial ranking is
// ever returned.
func Rank(
	ctx context.Context,
	profile domain.PreferenceProfile,
	weights WeightVector,
	snap *Snapshot,
	offers map[uint64]domain.LiveOffer,
	topK int,
	cfg Config,
) (result []domain.ScoredCandidate, err error) {
	// the engine boundary converts panics into ScoringUnavailable so the
	// caller can fall back instead of crashing the request
	defer func() {
		if r := recover(); r != nil {
			logger.Error("scoring engine panicked", "panic", fmt.Sprint(r))
			result, err = nil, fmt.Errorf("engine panic: %v: %w", r, ErrScoringUnavailable)
		}
	}()

	if snap == nil {
		return nil, fmt.Errorf("no snapshot built: %w", ErrScoringUnavailable)
	}
	if snap.staleAt(nowFunc(), cfg.SnapshotMaxAge) {
		return nil, fmt.Errorf("snapshot generation %d is stale: %w", snap.Generation, ErrScoringUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %v: %w", err, ErrScoringUnavailable)
	}

	survivors := make([]rankedItem, 0, len(snap.Items))
	for _, item := range snap.Items {
		offer, ok := offers[item.LaptopID]
		if !ok {
			continue
		}
		if !passesHardFilters(profile, offer, item.Features) {
			continue
		}
		survivors = append(survivors, rankedItem{item: item, offer: offer})
	}

	if len(survivors) == 0 {
		return []domain.ScoredCandidate{}, nil
	}

	priceBounds := liveBounds(survivors)

	for i := range survivors {
		survivors[i].score = relevance(profile, weights, snap, survivors[i], priceBounds, cfg)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %v: %w", err, ErrScoringUnavailable)
	}

	sortCandidates(survivors)

	if topK > len(survivors) {
		topK = len(survivors)
	}

	out := make([]domain.ScoredCandidate, 0, topK)
	for _, c := range survivors[:topK] {
		out = append(out, domain.ScoredCandidate{
			LaptopID:       c.item.LaptopID,
			Brand:          c.item.Brand,
			ModelName:      c.item.ModelName,
			Price:          c.offer.Price,
			StockCount:     c.offer.StockCount,
			RelevanceScore: c.score,
			Reasons:        explain(c.item, c.offer, profile, weights, snap, cfg),
		})
	}

	return out, nil
}

// passesHardFilters applies the disqualifying constraints: budget range,
// minimum RAM, maximum weight and live stock. Soft preferences never
// disqualify.
func passesHardFilters(profile domain.PreferenceProfile, offer domain.LiveOffer, features FeatureVector) bool {
	if offer.StockCount <= 0 {
		return false
	}
	if profile.BudgetMax != nil && offer.Price > *profile.BudgetMax {
		return false
	}
	if profile.BudgetMin != nil && offer.Price < *profile.BudgetMin {
		return false
	}
	if profile.MinRAMGB != nil && features[FeatRAM] < float64(*profile.MinRAMGB) {
		return false
	}
	if profile.MaxWeightKg != nil && features[FeatWeight] > *profile.MaxWeightKg {
		return false
	}
	return true
}

// liveBounds computes per-request price bounds over the surviving
// candidates; price is live data and has no snapshot bounds.
func liveBounds(survivors []rankedItem) Bounds {
	b := Bounds{Min: survivors[0].offer.Price, Max: survivors[0].offer.Price}
	for _, s := range survivors[1:] {
		if s.offer.Price < b.Min {
			b.Min = s.offer.Price
		}
		if s.offer.Price > b.Max {
			b.Max = s.offer.Price
		}
	}
	return b
}

// relevance is the weighted average of per-feature satisfaction,
// renormalized so the total weight sums to one. Undeclared features
// contribute their raw normalized value at the near-zero baseline weight.
func relevance(
	profile domain.PreferenceProfile,
	weights WeightVector,
	snap *Snapshot,
	cand rankedItem,
	priceBounds Bounds,
	cfg Config,
) float64 {
	var weighted, totalWeight float64

	for _, feat := range scoringFeatures {
		w := weights[feat]
		if w == 0 {
			w = cfg.BaselineWeight
		}

		sat := satisfaction(profile, snap, cand, feat, priceBounds)
		weighted += w * sat
		totalWeight += w
	}

	if totalWeight <= 0 {
		// no weights at all: plain unweighted average still yields a
		// total ordering
		var sum float64
		for _, feat := range scoringFeatures {
			sum += satisfaction(profile, snap, cand, feat, priceBounds)
		}
		return clamp01(sum / float64(len(scoringFeatures)))
	}

	return clamp01(weighted / totalWeight)
}

// satisfaction maps one feature of one candidate into [0,1]:
//   - declared minimum met => 1.0 (more-is-better features)
//   - declared minimum missed but not disqualifying => closeness ratio
//   - preferred GPU class matched => 1.0
//   - less-is-better features => inverted normalized value
//   - no declared preference => raw normalized value
func satisfaction(
	profile domain.PreferenceProfile,
	snap *Snapshot,
	cand rankedItem,
	feat string,
	priceBounds Bounds,
) float64 {
	value := cand.item.Features[feat]

	switch feat {
	case FeatPrice:
		return invertedNorm(cand.offer.Price, priceBounds)

	case FeatRAM:
		if profile.MinRAMGB != nil {
			// hard filter already removed anything below the minimum
			return 1.0
		}

	case FeatStorage:
		if profile.MinStorageGB != nil {
			return minimumCloseness(value, float64(*profile.MinStorageGB))
		}

	case FeatDisplaySize:
		if profile.MinDisplaySizeInches != nil {
			return minimumCloseness(value, *profile.MinDisplaySizeInches)
		}

	case FeatGPUScore:
		if profile.PreferredGPUClass != "" {
			if strings.EqualFold(cand.item.GPUClass, profile.PreferredGPUClass) {
				return 1.0
			}
			// mismatched class still earns its general quality signal
			return snap.Normalize(feat, value)
		}

	case FeatWeight:
		if profile.MaxWeightKg != nil {
			return 1.0
		}
		return invertedNorm(value, snap.Bounds[feat])
	}

	if lessIsBetter[feat] {
		return invertedNorm(value, snap.Bounds[feat])
	}
	return snap.Normalize(feat, value)
}

// minimumCloseness scores a soft declared minimum: met or exceeded is a
// full 1.0, below it decays linearly toward zero.
func minimumCloseness(value, minimum float64) float64 {
	if minimum <= 0 || value >= minimum {
		return 1.0
	}
	return clamp01(value / minimum)
}

// invertedNorm is satisfaction for less-is-better values. Zero-width
// bounds rate every candidate equally at 1.0.
func invertedNorm(value float64, b Bounds) float64 {
	if b.Max == b.Min {
		return 1.0
	}
	return 1.0 - clamp01((value-b.Min)/(b.Max-b.Min))
}

// sortCandidates orders by relevance descending with deterministic
// tie-breaks: lower live price, higher stock, model name ascending.
func sortCandidates(survivors []rankedItem) {
	sort.SliceStable(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.offer.Price != b.offer.Price {
			return a.offer.Price < b.offer.Price
		}
		if a.offer.StockCount != b.offer.StockCount {
			return a.offer.StockCount > b.offer.StockCount
		}
		return a.item.ModelName < b.item.ModelName
	})
}
