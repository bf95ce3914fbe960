package catalog

import (
	"context"
	"errors"
	"fmt"

	"gulhajiPlaza/domain"
	"gulhajiPlaza/pkg/logger"
)

// LaptopRepository contract interface
type LaptopRepository interface {
	Create(ctx context.Context, laptop *domain.Laptop) error
	FindByID(ctx context.Context, id uint64) (domain.Laptop, error)
	FindAll(ctx context.Context) ([]domain.Laptop, error)
	Update(ctx context.Context, laptop *domain.Laptop) error
	Delete(ctx context.Context, id uint64) error
}

// OfferRepository manages vendor offers for a laptop.
type OfferRepository interface {
	FindByLaptopID(ctx context.Context, laptopID uint64) ([]domain.VendorOffer, error)
	Upsert(ctx context.Context, offer *domain.VendorOffer) error
}

// SnapshotRefresher lets catalog mutations trigger an immediate snapshot
// rebuild so the ranking engine sees new hardware without waiting for the
// timer.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
}

type catalogService struct {
	laptopRepo LaptopRepository
	offerRepo  OfferRepository
	refresher  SnapshotRefresher
}

func NewCatalogService(laptopRepo LaptopRepository, offerRepo OfferRepository, refresher SnapshotRefresher) *catalogService {
	return &catalogService{
		laptopRepo: laptopRepo,
		offerRepo:  offerRepo,
		refresher:  refresher,
	}
}

func (s *catalogService) GetAllLaptops(ctx context.Context) ([]domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	laptops, err := s.laptopRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all laptops", err)
		return nil, err
	}

	return laptops, nil
}

func (s *catalogService) GetLaptopByID(ctx context.Context, id uint64) (*domain.Laptop, error) {
	if id == 0 {
		return nil, errors.New("invalid laptop id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	laptop, err := s.laptopRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find laptop by id", err)
		return nil, err
	}

	return &laptop, nil
}

func (s *catalogService) CreateLaptop(ctx context.Context, laptop *domain.Laptop) (*domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateLaptop(laptop); err != nil {
		logger.Error("Invalid laptop data", err)
		return nil, err
	}

	if err := s.laptopRepo.Create(ctx, laptop); err != nil {
		logger.Error("failed to create laptop", err)
		return nil, fmt.Errorf("failed to create laptop: %w", err)
	}

	logger.Info("laptop created", "laptop_id", laptop.ID, "model", laptop.ModelName)
	s.refreshSnapshot(ctx)

	return laptop, nil
}

func (s *catalogService) UpdateLaptop(ctx context.Context, laptop *domain.Laptop) (*domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if laptop.ID == 0 {
		return nil, errors.New("laptop ID is required")
	}

	if err := validateLaptop(laptop); err != nil {
		logger.Error("Invalid laptop data", err)
		return nil, err
	}

	if _, err := s.laptopRepo.FindByID(ctx, laptop.ID); err != nil {
		return nil, errors.New("laptop not found")
	}

	if err := s.laptopRepo.Update(ctx, laptop); err != nil {
		logger.Error("failed to update laptop", err)
		return nil, fmt.Errorf("failed to update laptop: %w", err)
	}

	updated, err := s.laptopRepo.FindByID(ctx, laptop.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated laptop: %w", err)
	}

	logger.Info("laptop updated", "laptop_id", laptop.ID)
	s.refreshSnapshot(ctx)

	return &updated, nil
}

func (s *catalogService) DeleteLaptop(ctx context.Context, id uint64) error {
	if id == 0 {
		return errors.New("invalid laptop id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.laptopRepo.FindByID(ctx, id); err != nil {
		return errors.New("laptop not found")
	}

	if err := s.laptopRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete laptop", err)
		return fmt.Errorf("failed to delete laptop: %w", err)
	}

	logger.Info("laptop deleted", "laptop_id", id)
	s.refreshSnapshot(ctx)

	return nil
}

func (s *catalogService) GetOffers(ctx context.Context, laptopID uint64) ([]domain.VendorOffer, error) {
	if laptopID == 0 {
		return nil, errors.New("invalid laptop id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	offers, err := s.offerRepo.FindByLaptopID(ctx, laptopID)
	if err != nil {
		logger.Error("failed to find offers", err)
		return nil, err
	}

	return offers, nil
}

func (s *catalogService) UpsertOffer(ctx context.Context, offer *domain.VendorOffer) (*domain.VendorOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if offer.LaptopID == 0 {
		return nil, errors.New("laptop ID is required")
	}
	if offer.VendorName == "" {
		return nil, errors.New("vendor name is required")
	}
	if offer.Price <= 0 {
		return nil, errors.New("price must be greater than 0")
	}
	if offer.StockCount < 0 {
		return nil, errors.New("stock count cannot be negative")
	}

	if _, err := s.laptopRepo.FindByID(ctx, offer.LaptopID); err != nil {
		return nil, errors.New("laptop not found")
	}

	if err := s.offerRepo.Upsert(ctx, offer); err != nil {
		logger.Error("failed to upsert offer", err)
		return nil, fmt.Errorf("failed to upsert offer: %w", err)
	}

	return offer, nil
}

// refreshSnapshot is best-effort after a mutation; the periodic rebuild
// will catch up if this fails.
func (s *catalogService) refreshSnapshot(ctx context.Context) {
	if s.refresher == nil {
		return
	}
	if err := s.refresher.Refresh(ctx); err != nil {
		logger.Error("snapshot refresh after catalog change failed", err)
	}
}

func validateLaptop(laptop *domain.Laptop) error {
	if laptop.Brand == "" {
		return errors.New("brand is required")
	}
	if laptop.ModelName == "" {
		return errors.New("model name is required")
	}
	if laptop.RAMGB <= 0 {
		return errors.New("ram must be greater than 0")
	}
	if laptop.StorageGB <= 0 {
		return errors.New("storage must be greater than 0")
	}
	if laptop.WeightKg < 0 {
		return errors.New("weight cannot be negative")
	}
	return nil
}
