package postgres

import (
	"context"
	"errors"
	"fmt"

	"bobTheBar/domain"

	"gorm.io/gorm"
)

// catalogColumns leaves out the embedding, which no read path needs.
var catalogColumns = []string{
	"id", "name", "spirit_type", "region", "price", "flavors",
	"age_statement", "abv", "description", "image_url", "created_at", "updated_at",
}

type BottleRepository struct {
	DB *gorm.DB
}

func NewBottleRepository(db *gorm.DB) *BottleRepository {
	return &BottleRepository{
		DB: db,
	}
}

func (r *BottleRepository) Create(ctx context.Context, bottle *domain.Bottle) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(bottle).Error; err != nil {
		return fmt.Errorf("failed to create bottle: %w", err)
	}

	return nil
}

func (r *BottleRepository) FindByID(ctx context.Context, id string) (domain.Bottle, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bottle{}, fmt.Errorf("context error: %w", err)
	}

	var bottle domain.Bottle

	err := r.DB.WithContext(ctx).Select(catalogColumns).Where("id = ?", id).First(&bottle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Bottle{}, domain.ErrBottleNotFound
		}
		return domain.Bottle{}, fmt.Errorf("failed to find bottle: %w", err)
	}

	return bottle, nil
}

func (r *BottleRepository) FindAll(ctx context.Context) ([]domain.Bottle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var bottles []domain.Bottle
	err := r.DB.WithContext(ctx).Select(catalogColumns).Order("created_at desc").Find(&bottles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find bottles: %w", err)
	}

	return bottles, nil
}
