package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ismaelallamtaoui/eco-score/domain"

	"gorm.io/gorm"
)

type WeightsRepository struct {
	DB *gorm.DB
}

func NewWeightsRepository(db *gorm.DB) *WeightsRepository {
	return &WeightsRepository{
		DB: db,
	}
}

// FindByName returns the stored profile, with found=false when no row
// exists (callers fall back to the compiled-in default weights).
func (r *WeightsRepository) FindByName(ctx context.Context, name string) (domain.WeightProfile, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.WeightProfile{}, false, fmt.Errorf("context error: %w", err)
	}

	var profile domain.WeightProfile
	err := r.DB.WithContext(ctx).Where("name = ?", name).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WeightProfile{}, false, nil
		}
		return domain.WeightProfile{}, false, fmt.Errorf("failed to find weight profile: %w", err)
	}

	return profile, true, nil
}

func (r *WeightsRepository) Upsert(ctx context.Context, profile *domain.WeightProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existing domain.WeightProfile
	err := r.DB.WithContext(ctx).Where("name = ?", profile.Name).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.DB.WithContext(ctx).Create(profile).Error; err != nil {
				return fmt.Errorf("failed to create weight profile: %w", err)
			}
			return nil
		}
		return fmt.Errorf("failed to find weight profile: %w", err)
	}

	updateData := map[string]interface{}{
		"ghg":          profile.GHG,
		"water":        profile.Water,
		"land":         profile.Land,
		"biodiversity": profile.Biodiversity,
		"pm":           profile.PM,
		"eutro":        profile.Eutro,
	}

	result := r.DB.WithContext(ctx).Model(&domain.WeightProfile{}).Where("id = ?", existing.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update weight profile: %w", result.Error)
	}

	return nil
}
