package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"gulhajiPlaza/domain"

	"gorm.io/gorm"
)

// RecommendationLogRepository is the analytics sink. Callers treat writes
// as best-effort; errors are returned for logging, not propagation.
type RecommendationLogRepository struct {
	DB *gorm.DB
}

func NewRecommendationLogRepository(db *gorm.DB) *RecommendationLogRepository {
	return &RecommendationLogRepository{
		DB: db,
	}
}

func (r *RecommendationLogRepository) Save(ctx context.Context, result domain.RecommendationResult) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	profileJSON, err := json.Marshal(result.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	candidatesJSON, err := json.Marshal(result.Candidates)
	if err != nil {
		return fmt.Errorf("failed to marshal candidates: %w", err)
	}

	row := domain.RecommendationLog{
		RequestID:          result.RequestID,
		Source:             result.Source,
		SnapshotGeneration: result.SnapshotGeneration,
		Profile:            profileJSON,
		Candidates:         candidatesJSON,
	}

	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save recommendation log: %w", err)
	}

	return nil
}
