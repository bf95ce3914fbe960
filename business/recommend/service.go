package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"gulhajiPlaza/domain"
	"gulhajiPlaza/pkg/logger"

	"github.com/google/uuid"
)

// ---- Collaborator interfaces ----

// CatalogRepository reads the laptop catalog (snapshot building and the
// fallback path).
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Laptop, error)
}

// OfferRepository reads the best in-stock vendor offer per laptop at
// request time. It must return an explicit error when unavailable, never
// a silent empty set.
type OfferRepository interface {
	FindLiveOffers(ctx context.Context, laptopIDs []uint64) (map[uint64]domain.LiveOffer, error)
}

// RecommendationSink persists served results for analytics, best-effort.
type RecommendationSink interface {
	Save(ctx context.Context, result domain.RecommendationResult) error
}

// ResultCache is a best-effort read-through cache for full results.
type ResultCache interface {
	Get(ctx context.Context, key string) (*domain.RecommendationResult, bool, error)
	Set(ctx context.Context, key string, result domain.RecommendationResult) error
}

// ---- Service ----

type RecommendService struct {
	catalogRepo CatalogRepository
	offerRepo   OfferRepository
	sink        RecommendationSink
	cache       ResultCache
	snapshots   *SnapshotHolder
	cfg         Config
}

func NewRecommendService(
	catalogRepo CatalogRepository,
	offerRepo OfferRepository,
	sink RecommendationSink,
	cache ResultCache,
	cfg Config,
) *RecommendService {
	return &RecommendService{
		catalogRepo: catalogRepo,
		offerRepo:   offerRepo,
		sink:        sink,
		cache:       cache,
		snapshots:   NewSnapshotHolder(),
		cfg:         cfg,
	}
}

// Refresh rebuilds the catalog snapshot off to the side and atomically
// swaps it in. In-flight requests keep the generation they started with.
func (s *RecommendService) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	laptops, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog for snapshot: %w", err)
	}

	snap, err := BuildSnapshot(laptops)
	if err != nil {
		if errors.Is(err, ErrEmptyCatalog) {
			logger.Warn("catalog is empty, clearing snapshot")
			s.snapshots.Replace(nil)
			SnapshotItemCount.Set(0)
			return nil
		}
		return fmt.Errorf("build snapshot: %w", err)
	}

	s.snapshots.Replace(snap)
	SnapshotRebuildsTotal.Inc()
	SnapshotItemCount.Set(float64(len(snap.Items)))

	logger.Info("catalog snapshot rebuilt",
		"generation", snap.Generation,
		"items", len(snap.Items),
	)

	return nil
}

// StartRefresher rebuilds the snapshot immediately and then on the given
// interval until ctx is cancelled. Rebuild failures keep the previous
// generation serving.
func (s *RecommendService) StartRefresher(ctx context.Context, interval time.Duration) {
	if err := s.Refresh(ctx); err != nil {
		logger.Error("initial snapshot build failed", err)
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(ctx); err != nil {
					logger.Error("scheduled snapshot rebuild failed", err)
				}
			}
		}
	}()
}

// Snapshot exposes the current generation for handlers and tests.
func (s *RecommendService) Snapshot() *Snapshot {
	return s.snapshots.Current()
}

// Recommend serves one recommendation request. The caller always gets
// either a ranked list (fallback-sourced lists are marked as such) or
// ErrCatalogUnavailable; internal scoring failures never surface.
func (s *RecommendService) Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	profile, weights := BuildProfile(req)
	topK := s.cfg.boundTopK(req.TopK)

	snap := s.snapshots.Current()

	var key string
	if s.cache != nil && snap != nil {
		key = cacheKey(profile, topK, snap.Generation)
		if cached, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			CacheHitsTotal.Inc()
			return *cached, nil
		}
	}

	result := domain.RecommendationResult{
		RequestID: uuid.NewString(),
		Profile:   profile,
		CreatedAt: time.Now(),
	}

	rankCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	candidates, err := s.rankPrimary(rankCtx, profile, weights, snap, topK)
	if err == nil {
		result.Source = domain.SourcePrimary
		result.SnapshotGeneration = snap.Generation
	} else {
		tid := TraceIDFromContext(ctx)
		logger.Warn("primary scoring unavailable, using fallback",
			"trace_id", tid,
			"error", err,
		)

		candidates, err = s.rankFallback(ctx, profile, topK)
		if err != nil {
			return domain.RecommendationResult{}, err
		}
		result.Source = domain.SourceFallback
		if snap != nil {
			result.SnapshotGeneration = snap.Generation
		}
	}

	result.Candidates = candidates

	RecommendationsServedTotal.WithLabelValues(result.Source).Inc()
	s.record(result)

	if s.cache != nil && key != "" && result.Source == domain.SourcePrimary {
		if err := s.cache.Set(ctx, key, result); err != nil {
			logger.Debug("recommendation cache write failed", "error", err)
		}
	}

	return result, nil
}

// rankPrimary gathers live offers and runs the scoring engine. Every
// failure here, including the offer fetch, maps to ScoringUnavailable;
// the fallback path decides whether the catalog is truly unreachable.
func (s *RecommendService) rankPrimary(
	ctx context.Context,
	profile domain.PreferenceProfile,
	weights WeightVector,
	snap *Snapshot,
	topK int,
) ([]domain.ScoredCandidate, error) {
	if snap == nil {
		return nil, fmt.Errorf("no snapshot built: %w", ErrScoringUnavailable)
	}

	offers, err := s.offerRepo.FindLiveOffers(ctx, snap.LaptopIDs())
	if err != nil {
		return nil, fmt.Errorf("load live offers: %v: %w", err, ErrScoringUnavailable)
	}

	return Rank(ctx, profile, weights, snap, offers, topK, s.cfg)
}

// rankFallback is the snapshot-free path. A catalog read failure here is
// the one condition surfaced to the caller.
func (s *RecommendService) rankFallback(
	ctx context.Context,
	profile domain.PreferenceProfile,
	topK int,
) ([]domain.ScoredCandidate, error) {
	laptops, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %v: %w", err, ErrCatalogUnavailable)
	}
	if len(laptops) == 0 {
		return []domain.ScoredCandidate{}, nil
	}

	ids := make([]uint64, 0, len(laptops))
	for _, l := range laptops {
		ids = append(ids, l.ID)
	}

	offers, err := s.offerRepo.FindLiveOffers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load live offers: %v: %w", err, ErrCatalogUnavailable)
	}

	return FallbackRank(profile, laptops, offers, topK, s.cfg), nil
}

// record hands the result to the analytics sink, fire-and-forget. Sink
// failures are logged and counted, never propagated.
func (s *RecommendService) record(result domain.RecommendationResult) {
	if s.sink == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.sink.Save(ctx, result); err != nil {
			SinkFailuresTotal.Inc()
			logger.Error("failed to record recommendation", err)
		}
	}()
}

// cacheKey folds the resolved profile, top-K and snapshot generation into
// a stable key; a new generation naturally misses the old entries.
func cacheKey(profile domain.PreferenceProfile, topK int, generation uint64) string {
	payload, err := json.Marshal(profile)
	if err != nil {
		return ""
	}

	h := fnv.New64a()
	_, _ = h.Write(payload)

	return fmt.Sprintf("reco:g%d:k%d:%x", generation, topK, h.Sum64())
}
