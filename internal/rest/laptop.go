package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"gulhajiPlaza/domain"
	"gulhajiPlaza/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetAllLaptops(ctx context.Context) ([]domain.Laptop, error)
	GetLaptopByID(ctx context.Context, id uint64) (*domain.Laptop, error)
	CreateLaptop(ctx context.Context, laptop *domain.Laptop) (*domain.Laptop, error)
	UpdateLaptop(ctx context.Context, laptop *domain.Laptop) (*domain.Laptop, error)
	DeleteLaptop(ctx context.Context, id uint64) error
	GetOffers(ctx context.Context, laptopID uint64) ([]domain.VendorOffer, error)
	UpsertOffer(ctx context.Context, offer *domain.VendorOffer) (*domain.VendorOffer, error)
}

type LaptopHandler struct {
	catalogService CatalogService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewLaptopHandler(catalogService CatalogService) *LaptopHandler {
	return &LaptopHandler{
		catalogService: catalogService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type LaptopRequest struct {
	Brand             string  `json:"brand" validate:"required"`
	ModelName         string  `json:"model_name" validate:"required"`
	ProcessorBrand    string  `json:"processor_brand"`
	ProcessorModel    string  `json:"processor_model"`
	ProcessorCores    int     `json:"processor_cores" validate:"gte=0"`
	ProcessorThreads  int     `json:"processor_threads" validate:"gte=0"`
	BaseClockGHz      float64 `json:"base_clock_ghz" validate:"gte=0"`
	BoostClockGHz     float64 `json:"boost_clock_ghz" validate:"gte=0"`
	RAMGB             int     `json:"ram_gb" validate:"required,gt=0"`
	MaxRAMGB          int     `json:"max_ram_gb" validate:"gte=0"`
	StorageType       string  `json:"storage_type"`
	StorageGB         int     `json:"storage_gb" validate:"required,gt=0"`
	DisplaySizeInches float64 `json:"display_size_inches" validate:"gte=0"`
	DisplayResolution string  `json:"display_resolution"`
	PanelType         string  `json:"panel_type"`
	RefreshRateHz     int     `json:"refresh_rate_hz" validate:"gte=0"`
	GPUType           string  `json:"gpu_type" validate:"omitempty,oneof=integrated dedicated hybrid"`
	GPUModel          string  `json:"gpu_model"`
	VRAMGB            int     `json:"vram_gb" validate:"gte=0"`
	WeightKg          float64 `json:"weight_kg" validate:"gte=0"`
	ThicknessMM       float64 `json:"thickness_mm" validate:"gte=0"`
	BatteryWhr        float64 `json:"battery_whr" validate:"gte=0"`
	USBCPorts         int     `json:"usb_c_ports" validate:"gte=0"`
	USBAPorts         int     `json:"usb_a_ports" validate:"gte=0"`
	HDMIPorts         int     `json:"hdmi_ports" validate:"gte=0"`
}

type UpsertOfferRequest struct {
	VendorName string  `json:"vendor_name" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	StockCount int     `json:"stock_count" validate:"gte=0"`
}

func (h *LaptopHandler) GetAllLaptops(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	laptops, err := h.catalogService.GetAllLaptops(ctx)
	if err != nil {
		logger.Error("Failed to find all laptops", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all laptops",
		"laptops": laptops,
	})
}

func (h *LaptopHandler) GetLaptopByID(c echo.Context) error {
	laptopIdStr := c.Param("id")

	laptopId, err := strconv.ParseUint(laptopIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	laptop, err := h.catalogService.GetLaptopByID(ctx, laptopId)
	if err != nil {
		if err.Error() == "laptop not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find laptop by id",
		"laptop":  laptop,
	})
}

func (h *LaptopHandler) CreateLaptop(c echo.Context) error {
	var req LaptopRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate laptop request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	laptop := laptopFromRequest(req)

	newLaptop, err := h.catalogService.CreateLaptop(ctx, laptop)
	if err != nil {
		logger.Error("Failed to create laptop", err)
		if err.Error() == "brand is required" ||
			err.Error() == "model name is required" ||
			err.Error() == "ram must be greater than 0" ||
			err.Error() == "storage must be greater than 0" ||
			err.Error() == "weight cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "laptop successfully created",
		"laptop":  newLaptop,
	})
}

func (h *LaptopHandler) UpdateLaptop(c echo.Context) error {
	laptopIdStr := c.Param("id")

	laptopId, err := strconv.ParseUint(laptopIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req LaptopRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate laptop request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	laptop := laptopFromRequest(req)
	laptop.ID = laptopId

	updatedLaptop, err := h.catalogService.UpdateLaptop(ctx, laptop)
	if err != nil {
		logger.Error("Failed to update laptop", err)
		if err.Error() == "laptop not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "laptop ID is required" ||
			err.Error() == "brand is required" ||
			err.Error() == "model name is required" ||
			err.Error() == "ram must be greater than 0" ||
			err.Error() == "storage must be greater than 0" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update laptop",
		"laptop":  updatedLaptop,
	})
}

func (h *LaptopHandler) DeleteLaptop(c echo.Context) error {
	laptopIdStr := c.Param("id")

	laptopId, err := strconv.ParseUint(laptopIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.catalogService.DeleteLaptop(ctx, laptopId)
	if err != nil {
		logger.Error("Failed to delete laptop", err)
		if err.Error() == "laptop not found" || err.Error() == "invalid laptop id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "laptop successfully deleted",
		"laptop_id": laptopId,
	})
}

func (h *LaptopHandler) GetOffers(c echo.Context) error {
	laptopIdStr := c.Param("id")

	laptopId, err := strconv.ParseUint(laptopIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	offers, err := h.catalogService.GetOffers(ctx, laptopId)
	if err != nil {
		logger.Error("Failed to find offers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get offers",
		"offers":  offers,
	})
}

func (h *LaptopHandler) UpsertOffer(c echo.Context) error {
	laptopIdStr := c.Param("id")

	laptopId, err := strconv.ParseUint(laptopIdStr, 10, 64)
	if err != nil {
		logger.Error("Invalid laptop id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpsertOfferRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate offer request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	offer := &domain.VendorOffer{
		LaptopID:   laptopId,
		VendorName: req.VendorName,
		Price:      req.Price,
		StockCount: req.StockCount,
	}

	savedOffer, err := h.catalogService.UpsertOffer(ctx, offer)
	if err != nil {
		logger.Error("Failed to upsert offer", err)
		if err.Error() == "laptop not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "vendor name is required" ||
			err.Error() == "price must be greater than 0" ||
			err.Error() == "stock count cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "offer successfully saved",
		"offer":   savedOffer,
	})
}

func laptopFromRequest(req LaptopRequest) *domain.Laptop {
	return &domain.Laptop{
		Brand:             req.Brand,
		ModelName:         req.ModelName,
		ProcessorBrand:    req.ProcessorBrand,
		ProcessorModel:    req.ProcessorModel,
		ProcessorCores:    req.ProcessorCores,
		ProcessorThreads:  req.ProcessorThreads,
		BaseClockGHz:      req.BaseClockGHz,
		BoostClockGHz:     req.BoostClockGHz,
		RAMGB:             req.RAMGB,
		MaxRAMGB:          req.MaxRAMGB,
		StorageType:       req.StorageType,
		StorageGB:         req.StorageGB,
		DisplaySizeInches: req.DisplaySizeInches,
		DisplayResolution: req.DisplayResolution,
		PanelType:         req.PanelType,
		RefreshRateHz:     req.RefreshRateHz,
		GPUType:           req.GPUType,
		GPUModel:          req.GPUModel,
		VRAMGB:            req.VRAMGB,
		WeightKg:          req.WeightKg,
		ThicknessMM:       req.ThicknessMM,
		BatteryWhr:        req.BatteryWhr,
		USBCPorts:         req.USBCPorts,
		USBAPorts:         req.USBAPorts,
		HDMIPorts:         req.HDMIPorts,
	}
}
