package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gulhajiPlaza/business/recommend"
	"gulhajiPlaza/domain"
	"gulhajiPlaza/pkg/logger"
	"gulhajiPlaza/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
	}

	RecommendService interface {
		Recommend(ctx context.Context, req domain.RecommendationRequest) (domain.RecommendationResult, error)
		Refresh(ctx context.Context) error
	}

	BudgetRequest struct {
		Min *float64 `json:"min" validate:"omitempty,gte=0"`
		Max *float64 `json:"max" validate:"omitempty,gt=0"`
	}

	RecommendRequest struct {
		Budget             BudgetRequest `json:"budget"`
		Usage              string        `json:"usage" validate:"omitempty,oneof=gaming programming design video_editing office student general workstation"`
		MinRAMGB           *int          `json:"min_ram_gb" validate:"omitempty,gt=0"`
		MinStorageGB       *int          `json:"min_storage_gb" validate:"omitempty,gt=0"`
		PreferredGPUClass  string        `json:"preferred_gpu_class" validate:"omitempty,oneof=integrated dedicated hybrid"`
		MinDisplaySize     *float64      `json:"min_display_size" validate:"omitempty,gt=0"`
		MaxWeightKg        *float64      `json:"max_weight_kg" validate:"omitempty,gt=0"`
		PreferThinAndLight bool          `json:"prefer_thin_and_light"`
		TopK               int           `json:"top_k" validate:"omitempty,min=1,max=20"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
	}
}

// POST /api/v1/recommendations
func (h *RecommendHandler) Recommend(c echo.Context) error {
	start := time.Now()
	metrics.RecommendRequests.Inc()

	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx := recommend.WithTraceID(c.Request().Context(), uuid.NewString())

	result, err := h.recommendService.Recommend(ctx, domain.RecommendationRequest{
		Budget: domain.BudgetRange{
			Min: req.Budget.Min,
			Max: req.Budget.Max,
		},
		Usage:                req.Usage,
		MinRAMGB:             req.MinRAMGB,
		MinStorageGB:         req.MinStorageGB,
		PreferredGPUClass:    req.PreferredGPUClass,
		MinDisplaySizeInches: req.MinDisplaySize,
		MaxWeightKg:          req.MaxWeightKg,
		PreferThinAndLight:   req.PreferThinAndLight,
		TopK:                 req.TopK,
	})

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, recommend.ErrCatalogUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "catalog unavailable, try again later"})
		}
		logger.Error("recommendation request failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// POST /api/v1/recommendations/refresh
func (h *RecommendHandler) RefreshSnapshot(c echo.Context) error {
	if err := h.recommendService.Refresh(c.Request().Context()); err != nil {
		logger.Error("manual snapshot refresh failed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("snapshot refreshed"))
}
