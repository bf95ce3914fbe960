package recommend

import (
	"strings"

	"gulhajiPlaza/domain"
)

// nudgeWeight is assigned to a feature whose weight is zero in the usage
// table but for which the caller declared an explicit preference. A stated
// preference is never silently ignored.
const nudgeWeight = 0.05

// BuildProfile resolves raw declared preferences into a profile plus
// weight vector. This never fails: malformed fields are dropped and an
// unrecognized usage tag falls back to the general table.
func BuildProfile(req domain.RecommendationRequest) (domain.PreferenceProfile, WeightVector) {
	profile := domain.PreferenceProfile{
		PreferThinAndLight: req.PreferThinAndLight,
	}

	if KnownUsage(req.Usage) {
		profile.Usage = req.Usage
	} else {
		profile.Usage = UsageGeneral
	}
	weights := WeightsForUsage(profile.Usage)

	if req.Budget.Min != nil && *req.Budget.Min >= 0 {
		profile.BudgetMin = req.Budget.Min
	}
	if req.Budget.Max != nil && *req.Budget.Max > 0 {
		profile.BudgetMax = req.Budget.Max
	}
	// contradictory range: keep the ceiling, drop the floor
	if profile.BudgetMin != nil && profile.BudgetMax != nil && *profile.BudgetMin > *profile.BudgetMax {
		profile.BudgetMin = nil
	}

	if req.MinRAMGB != nil && *req.MinRAMGB > 0 {
		profile.MinRAMGB = req.MinRAMGB
	}
	if req.MinStorageGB != nil && *req.MinStorageGB > 0 {
		profile.MinStorageGB = req.MinStorageGB
	}
	if req.MinDisplaySizeInches != nil && *req.MinDisplaySizeInches > 0 {
		profile.MinDisplaySizeInches = req.MinDisplaySizeInches
	}
	if req.MaxWeightKg != nil && *req.MaxWeightKg > 0 {
		profile.MaxWeightKg = req.MaxWeightKg
	}

	switch strings.ToLower(req.PreferredGPUClass) {
	case domain.GPUClassIntegrated, domain.GPUClassHybrid, domain.GPUClassDedicated:
		profile.PreferredGPUClass = strings.ToLower(req.PreferredGPUClass)
	}

	applyNudges(profile, weights)

	return profile, weights
}

// applyNudges lifts the weight of every explicitly declared preference
// that the usage table left at zero.
func applyNudges(profile domain.PreferenceProfile, weights WeightVector) {
	nudge := func(feat string) {
		if weights[feat] == 0 {
			weights[feat] = nudgeWeight
		}
	}

	if profile.BudgetMin != nil || profile.BudgetMax != nil {
		nudge(FeatPrice)
	}
	if profile.MinRAMGB != nil {
		nudge(FeatRAM)
	}
	if profile.MinStorageGB != nil {
		nudge(FeatStorage)
	}
	if profile.MinDisplaySizeInches != nil {
		nudge(FeatDisplaySize)
	}
	if profile.MaxWeightKg != nil {
		nudge(FeatWeight)
	}
	if profile.PreferredGPUClass != "" {
		nudge(FeatGPUScore)
	}
	if profile.PreferThinAndLight {
		nudge(FeatPortability)
		nudge(FeatWeight)
	}
}
