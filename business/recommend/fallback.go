package recommend

import (
	"sort"

	"gulhajiPlaza/domain"
)

// FallbackRank is the degraded, snapshot-free path: hard filters only,
// ascending live price, every survivor pinned at the fixed fallback score
// so callers can tell the list was budget-filtered but not ranked.
func FallbackRank(
	profile domain.PreferenceProfile,
	laptops []domain.Laptop,
	offers map[uint64]domain.LiveOffer,
	topK int,
	cfg Config,
) []domain.ScoredCandidate {
	survivors := make([]domain.ScoredCandidate, 0, len(laptops))

	for _, l := range laptops {
		offer, ok := offers[l.ID]
		if !ok {
			continue
		}
		if !passesHardFilters(profile, offer, FeatureVector{
			FeatRAM:    float64(l.RAMGB),
			FeatWeight: l.WeightKg,
		}) {
			continue
		}

		survivors = append(survivors, domain.ScoredCandidate{
			LaptopID:       l.ID,
			Brand:          l.Brand,
			ModelName:      l.ModelName,
			Price:          offer.Price,
			StockCount:     offer.StockCount,
			RelevanceScore: cfg.FallbackScore,
			Reasons:        []string{fallbackReason(profile)},
		})
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if survivors[i].Price != survivors[j].Price {
			return survivors[i].Price < survivors[j].Price
		}
		return survivors[i].ModelName < survivors[j].ModelName
	})

	if topK > len(survivors) {
		topK = len(survivors)
	}

	return survivors[:topK]
}

func fallbackReason(profile domain.PreferenceProfile) string {
	if profile.BudgetMax != nil {
		return "in stock and within your budget, ranked by price"
	}
	return "in stock, ranked by price"
}
