package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Recommendation sources.
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// BudgetRange bounds the acceptable live price, in PKR.
type BudgetRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// RecommendationRequest is the raw declared preference set as received
// from the caller. Validation happens at the transport layer; the profile
// builder drops whatever is still malformed instead of rejecting.
type RecommendationRequest struct {
	Budget               BudgetRange `json:"budget"`
	Usage                string      `json:"usage,omitempty"`
	MinRAMGB             *int        `json:"min_ram_gb,omitempty"`
	MinStorageGB         *int        `json:"min_storage_gb,omitempty"`
	PreferredGPUClass    string      `json:"preferred_gpu_class,omitempty"`
	MinDisplaySizeInches *float64    `json:"min_display_size,omitempty"`
	MaxWeightKg          *float64    `json:"max_weight_kg,omitempty"`
	PreferThinAndLight   bool        `json:"prefer_thin_and_light,omitempty"`
	TopK                 int         `json:"top_k,omitempty"`
}

// PreferenceProfile is the resolved preference set a ranking ran against.
// Every field is optional; nil/empty means "no preference".
type PreferenceProfile struct {
	BudgetMin            *float64 `json:"budget_min,omitempty"`
	BudgetMax            *float64 `json:"budget_max,omitempty"`
	Usage                string   `json:"usage,omitempty"`
	MinRAMGB             *int     `json:"min_ram_gb,omitempty"`
	MinStorageGB         *int     `json:"min_storage_gb,omitempty"`
	PreferredGPUClass    string   `json:"preferred_gpu_class,omitempty"`
	MinDisplaySizeInches *float64 `json:"min_display_size,omitempty"`
	MaxWeightKg          *float64 `json:"max_weight_kg,omitempty"`
	PreferThinAndLight   bool     `json:"prefer_thin_and_light,omitempty"`
}

// ScoredCandidate is one ranked laptop with its relevance and reasons.
type ScoredCandidate struct {
	LaptopID       uint64   `json:"laptop_id"`
	Brand          string   `json:"brand"`
	ModelName      string   `json:"model_name"`
	Price          float64  `json:"price"`
	StockCount     int      `json:"stock_count"`
	RelevanceScore float64  `json:"relevance_score"`
	Reasons        []string `json:"reasons"`
}

// RecommendationResult is the full response of one recommendation call.
type RecommendationResult struct {
	RequestID          string            `json:"request_id"`
	Source             string            `json:"source"`
	SnapshotGeneration uint64            `json:"snapshot_generation"`
	Profile            PreferenceProfile `json:"profile"`
	Candidates         []ScoredCandidate `json:"recommendations"`
	CreatedAt          time.Time         `json:"created_at"`
}

// RecommendationLog is the analytics row persisted for every served result.
type RecommendationLog struct {
	ID                 uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID          string         `gorm:"column:request_id;type:text;index" json:"request_id"`
	Source             string         `gorm:"column:source;type:text" json:"source"`
	SnapshotGeneration uint64         `gorm:"column:snapshot_generation" json:"snapshot_generation"`
	Profile            datatypes.JSON `gorm:"column:profile;type:jsonb" json:"profile"`
	Candidates         datatypes.JSON `gorm:"column:candidates;type:jsonb" json:"candidates"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationLog) TableName() string {
	return "recommendation_logs"
}
