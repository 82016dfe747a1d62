package fridge

import (
	"context"

	"frigoo-backend/entities"

	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		AddFridgeItem(ctx context.Context, item *entities.FridgeItem) error
		GetFridgeItemByID(ctx context.Context, id string) (*entities.FridgeItem, error)
		UpdateFridgeItem(ctx context.Context, item *entities.FridgeItem) error
		DeleteFridgeItem(ctx context.Context, id string) error
		GetFridgeItems(ctx context.Context, userID string) ([]*entities.FridgeItem, error)
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) AddFridgeItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *fridgeRepository) GetFridgeItemByID(ctx context.Context, id string) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *fridgeRepository) UpdateFridgeItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *fridgeRepository) DeleteFridgeItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FridgeItem{}).Error
}

// GetFridgeItems returns every item of one user ordered by expiry date.
// Status filtering happens in the service because the classification depends
// on the request clock, not on a stored column.
func (r *fridgeRepository) GetFridgeItems(ctx context.Context, userID string) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expires_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
