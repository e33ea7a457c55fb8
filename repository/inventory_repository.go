package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/LarzzCode/LarGarage/models"
)

const importBatchSize = 200

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// List returns all items ordered by name.
func (r *InventoryRepository) List(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).Order("name asc").Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return items, nil
}

func (r *InventoryRepository) Get(ctx context.Context, id uint) (models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return models.InventoryItem{}, notFound(err)
	}
	return item, nil
}

func (r *InventoryRepository) Create(ctx context.Context, item models.InventoryItem) (models.InventoryItem, error) {
	item.ID = 0
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return models.InventoryItem{}, fmt.Errorf("create inventory: %w", err)
	}
	return item, nil
}

// CreateMany bulk inserts imported rows in one transaction.
func (r *InventoryRepository) CreateMany(ctx context.Context, items []models.InventoryItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	rows := make([]models.InventoryItem, len(items))
	copy(rows, items)
	for i := range rows {
		rows[i].ID = 0
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&rows, importBatchSize).Error
	})
	if err != nil {
		return 0, fmt.Errorf("bulk insert inventory: %w", err)
	}
	return len(rows), nil
}

func (r *InventoryRepository) Update(ctx context.Context, id uint, item models.InventoryItem) (models.InventoryItem, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return models.InventoryItem{}, err
	}
	err = r.db.WithContext(ctx).Model(&existing).
		Select("name", "brand", "category", "sku", "price", "stock").
		Updates(&item).Error
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("update inventory %d: %w", id, err)
	}
	return r.Get(ctx, id)
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.InventoryItem{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete inventory %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
