package recommend

import "time"

type Config struct {
	// TopKDefault is used when the request does not ask for a count,
	// TopKMax is the hard cap regardless of what the caller asks for.
	TopKDefault int
	TopKMax     int

	// SnapshotMaxAge marks a snapshot stale; a stale snapshot makes the
	// primary path report ErrScoringUnavailable.
	SnapshotMaxAge time.Duration

	// RequestTimeout bounds one full rank() call.
	RequestTimeout time.Duration

	// BaselineWeight is applied to features nobody declared a preference
	// for, so the general-quality signal stays near-zero but nonzero.
	BaselineWeight float64

	// BudgetComfortRatio controls the "within budget" reason: the reason
	// is only emitted when price <= ratio * max budget.
	BudgetComfortRatio float64

	// FallbackScore is the fixed relevance assigned by the fallback
	// ranker, signalling "budget-filtered only, unranked".
	FallbackScore float64
}

const (
	defaultTopK               = 5
	defaultTopKMax            = 20
	defaultSnapshotMaxAge     = 30 * time.Minute
	defaultRequestTimeout     = 3 * time.Second
	defaultBaselineWeight     = 0.02
	defaultBudgetComfortRatio = 0.95
	defaultFallbackScore      = 0.5
)

func DefaultConfig() Config {
	return Config{
		TopKDefault:        defaultTopK,
		TopKMax:            defaultTopKMax,
		SnapshotMaxAge:     defaultSnapshotMaxAge,
		RequestTimeout:     defaultRequestTimeout,
		BaselineWeight:     defaultBaselineWeight,
		BudgetComfortRatio: defaultBudgetComfortRatio,
		FallbackScore:      defaultFallbackScore,
	}
}

func (c Config) boundTopK(topK int) int {
	if topK <= 0 {
		return c.TopKDefault
	}
	if topK > c.TopKMax {
		return c.TopKMax
	}
	return topK
}
