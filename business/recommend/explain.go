package recommend

import (
	"fmt"
	"sort"

	"gulhajiPlaza/domain"
)

const maxReasons = 3

// genericReason is emitted when no strong signal exists; a candidate is
// never returned without at least one reason.
const genericReason = "matches your general preferences"

// medianReasons are emitted when a weighted feature beats the snapshot
// median (or sits below it, for less-is-better features).
var medianReasons = map[string]string{
	FeatRAM:            "more RAM than most laptops in the catalog",
	FeatStorage:        "more storage than the catalog median",
	FeatCores:          "stronger multi-core processor than most",
	FeatThreads:        "handles more parallel work than most",
	FeatBaseClock:      "faster base clock than the catalog median",
	FeatBoostClock:     "faster boost clock than the catalog median",
	FeatGPUScore:       "above-average graphics performance",
	FeatRefreshRate:    "smoother, higher refresh rate display",
	FeatDisplayQuality: "better display than most laptops in the catalog",
	FeatDisplaySize:    "larger display than the catalog median",
	FeatPortability:    "more portable than most laptops in the catalog",
	FeatBattery:        "longer battery endurance than most",
	FeatConnectivity:   "more ports than most laptops in the catalog",
	FeatWeight:         "lighter than most laptops in the catalog",
}

// explain derives ordered human-readable reasons from exactly the inputs
// that produced the score. Reasons follow feature weight, descending.
func explain(
	item SnapshotItem,
	offer domain.LiveOffer,
	profile domain.PreferenceProfile,
	weights WeightVector,
	snap *Snapshot,
	cfg Config,
) []string {
	ordered := orderedFeatures(weights)

	reasons := make([]string, 0, maxReasons)
	for _, feat := range ordered {
		if len(reasons) >= maxReasons {
			break
		}
		if r, ok := reasonFor(feat, item, offer, profile, snap, cfg); ok {
			reasons = append(reasons, r)
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, genericReason)
	}

	return reasons
}

// orderedFeatures returns the weighted features sorted by weight
// descending, name ascending on ties so the order is reproducible.
func orderedFeatures(weights WeightVector) []string {
	feats := make([]string, 0, len(weights))
	for feat, w := range weights {
		if w > 0 {
			feats = append(feats, feat)
		}
	}

	sort.Slice(feats, func(i, j int) bool {
		if weights[feats[i]] != weights[feats[j]] {
			return weights[feats[i]] > weights[feats[j]]
		}
		return feats[i] < feats[j]
	})

	return feats
}

func reasonFor(
	feat string,
	item SnapshotItem,
	offer domain.LiveOffer,
	profile domain.PreferenceProfile,
	snap *Snapshot,
	cfg Config,
) (string, bool) {
	switch feat {
	case FeatPrice:
		if profile.BudgetMax == nil {
			return "", false
		}
		if offer.Price <= cfg.BudgetComfortRatio**profile.BudgetMax {
			return "comfortably within your budget", true
		}
		return "fits your budget ceiling", true

	case FeatGPUScore:
		if profile.PreferredGPUClass != "" && item.GPUClass == profile.PreferredGPUClass {
			return fmt.Sprintf("has the %s graphics you asked for", profile.PreferredGPUClass), true
		}
	}

	text, ok := medianReasons[feat]
	if !ok {
		return "", false
	}

	med, ok := snap.Medians[feat]
	if !ok {
		return "", false
	}

	value := item.Features[feat]
	if lessIsBetter[feat] {
		if value < med {
			return text, true
		}
		return "", false
	}
	if value > med {
		return text, true
	}
	return "", false
}
