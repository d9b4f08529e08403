package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ismaelallamtaoui/eco-score/domain"

	"gorm.io/gorm"
)

type BasketRepository struct {
	DB *gorm.DB
}

func NewBasketRepository(db *gorm.DB) *BasketRepository {
	return &BasketRepository{
		DB: db,
	}
}

func (r *BasketRepository) Create(ctx context.Context, basket *domain.Basket) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(basket).Error; err != nil {
		return fmt.Errorf("failed to create basket: %w", err)
	}

	return nil
}

func (r *BasketRepository) FindByToken(ctx context.Context, token string) (domain.Basket, error) {
	if err := ctx.Err(); err != nil {
		return domain.Basket{}, fmt.Errorf("context error: %w", err)
	}

	var basket domain.Basket
	err := r.DB.WithContext(ctx).Where("token = ?", token).First(&basket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Basket{}, errors.New("basket not found")
		}
		return domain.Basket{}, fmt.Errorf("failed to find basket: %w", err)
	}

	return basket, nil
}

func (r *BasketRepository) FindItems(ctx context.Context, basketID uint64) ([]domain.BasketItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.BasketItem
	err := r.DB.WithContext(ctx).Where("basket_id = ?", basketID).Order("id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find basket items: %w", err)
	}

	return items, nil
}

// UpsertItem sets the quantity for a gtin in a basket. Quantity zero or
// below removes the line.
func (r *BasketRepository) UpsertItem(ctx context.Context, basketID uint64, gtin string, quantity float64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if quantity <= 0 {
		result := r.DB.WithContext(ctx).
			Where("basket_id = ? AND gtin = ?", basketID, gtin).
			Delete(&domain.BasketItem{})
		if result.Error != nil {
			return fmt.Errorf("failed to remove basket item: %w", result.Error)
		}
		return nil
	}

	var existing domain.BasketItem
	err := r.DB.WithContext(ctx).Where("basket_id = ? AND gtin = ?", basketID, gtin).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item := domain.BasketItem{BasketID: basketID, GTIN: gtin, Quantity: quantity}
			if err := r.DB.WithContext(ctx).Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create basket item: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to find basket item: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.BasketItem{}).Where("id = ?", existing.ID).Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update basket item: %w", result.Error)
	}

	return nil
}
