package postgres

import (
	"context"
	"errors"
	"fmt"

	"gulhajiPlaza/domain"

	"gorm.io/gorm"
)

type LaptopRepository struct {
	DB *gorm.DB
}

func NewLaptopRepository(db *gorm.DB) *LaptopRepository {
	return &LaptopRepository{
		DB: db,
	}
}

func (r *LaptopRepository) Create(ctx context.Context, laptop *domain.Laptop) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(laptop).Error; err != nil {
		return fmt.Errorf("failed to create laptop: %w", err)
	}

	return nil
}

func (r *LaptopRepository) FindByID(ctx context.Context, id uint64) (domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return domain.Laptop{}, fmt.Errorf("context error: %w", err)
	}

	var laptop domain.Laptop

	err := r.DB.WithContext(ctx).First(&laptop, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Laptop{}, errors.New("laptop not found")
		}
		return domain.Laptop{}, fmt.Errorf("failed to find laptop: %w", err)
	}

	return laptop, nil
}

func (r *LaptopRepository) FindAll(ctx context.Context) ([]domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var laptops []domain.Laptop
	err := r.DB.WithContext(ctx).Order("id").Find(&laptops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find laptops: %w", err)
	}

	return laptops, nil
}

func (r *LaptopRepository) Update(ctx context.Context, laptop *domain.Laptop) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existing domain.Laptop
	if err := r.DB.WithContext(ctx).First(&existing, laptop.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("laptop not found")
		}
		return fmt.Errorf("failed to find laptop: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Laptop{}).Where("id = ?", laptop.ID).Updates(map[string]interface{}{
		"brand":               laptop.Brand,
		"model_name":          laptop.ModelName,
		"processor_brand":     laptop.ProcessorBrand,
		"processor_model":     laptop.ProcessorModel,
		"processor_cores":     laptop.ProcessorCores,
		"processor_threads":   laptop.ProcessorThreads,
		"base_clock_ghz":      laptop.BaseClockGHz,
		"boost_clock_ghz":     laptop.BoostClockGHz,
		"ram_gb":              laptop.RAMGB,
		"max_ram_gb":          laptop.MaxRAMGB,
		"storage_type":        laptop.StorageType,
		"storage_gb":          laptop.StorageGB,
		"display_size_inches": laptop.DisplaySizeInches,
		"display_resolution":  laptop.DisplayResolution,
		"panel_type":          laptop.PanelType,
		"refresh_rate_hz":     laptop.RefreshRateHz,
		"gpu_type":            laptop.GPUType,
		"gpu_model":           laptop.GPUModel,
		"vram_gb":             laptop.VRAMGB,
		"weight_kg":           laptop.WeightKg,
		"thickness_mm":        laptop.ThicknessMM,
		"battery_whr":         laptop.BatteryWhr,
		"usb_c_ports":         laptop.USBCPorts,
		"usb_a_ports":         laptop.USBAPorts,
		"hdmi_ports":          laptop.HDMIPorts,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update laptop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("laptop not found or already deleted")
	}

	return nil
}

func (r *LaptopRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Laptop{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete laptop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("laptop not found or already deleted")
	}

	return nil
}
