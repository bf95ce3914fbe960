package postgres

import (
	"context"
	"fmt"

	"gulhajiPlaza/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{
		DB: db,
	}
}

func (r *OfferRepository) FindByLaptopID(ctx context.Context, laptopID uint64) ([]domain.VendorOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var offers []domain.VendorOffer
	err := r.DB.WithContext(ctx).Where("laptop_id = ?", laptopID).Order("price").Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find offers: %w", err)
	}

	return offers, nil
}

// Upsert inserts or replaces the offer row for a (laptop, vendor) pair.
func (r *OfferRepository) Upsert(ctx context.Context, offer *domain.VendorOffer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "laptop_id"}, {Name: "vendor_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "stock_count", "updated_at"}),
	}).Create(offer).Error
	if err != nil {
		return fmt.Errorf("failed to upsert offer: %w", err)
	}

	return nil
}

// FindLiveOffers returns the cheapest in-stock offer per laptop; laptops
// with no in-stock offer are absent from the map, never zero-filled.
func (r *OfferRepository) FindLiveOffers(ctx context.Context, laptopIDs []uint64) (map[uint64]domain.LiveOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(laptopIDs) == 0 {
		return map[uint64]domain.LiveOffer{}, nil
	}

	var offers []domain.VendorOffer
	err := r.DB.WithContext(ctx).
		Where("laptop_id IN ? AND stock_count > 0", laptopIDs).
		Order("laptop_id, price").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find live offers: %w", err)
	}

	live := make(map[uint64]domain.LiveOffer, len(offers))
	for _, o := range offers {
		if _, ok := live[o.LaptopID]; ok {
			continue // rows are price-ordered, first one wins
		}
		live[o.LaptopID] = domain.LiveOffer{
			Price:      o.Price,
			StockCount: o.StockCount,
		}
	}

	return live, nil
}
