package recommend

import "errors"

var (
	// ErrEmptyCatalog means there is nothing to rank. Callers translate
	// this into an empty result, never into a failure.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// ErrScoringUnavailable means the primary scoring path cannot produce
	// a trustworthy ranking (missing or stale snapshot, timeout, internal
	// failure). The service falls back to the price-sorted ranking.
	ErrScoringUnavailable = errors.New("scoring unavailable")

	// ErrCatalogUnavailable means even the fallback path cannot reach the
	// catalog. This is the only error surfaced to the caller.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
