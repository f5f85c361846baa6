package repository

import (
	"context"

	"gorm.io/gorm"

	"tryon/internal/model"
)

// OutfitRepository defines outfit persistence operations.
type OutfitRepository interface {
	Create(ctx context.Context, outfit *model.Outfit) error
	ListByOwner(ctx context.Context, userID uint) ([]model.Outfit, error)
}

type outfitRepository struct {
	db *gorm.DB
}

// NewOutfitRepository builds a GORM-backed repository.
func NewOutfitRepository(db *gorm.DB) OutfitRepository {
	return &outfitRepository{db: db}
}

func (r *outfitRepository) Create(ctx context.Context, outfit *model.Outfit) error {
	return r.db.WithContext(ctx).Create(outfit).Error
}

// ListByOwner returns the owner's outfits newest first.
func (r *outfitRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Outfit, error) {
	var outfits []model.Outfit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&outfits).Error
	if err != nil {
		return nil, err
	}
	return outfits, nil
}
