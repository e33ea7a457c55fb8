package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LarzzCode/LarGarage/models"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns row 1, falling back to defaults when it was never saved.
func (r *SettingsRepository) Get(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	err := r.db.WithContext(ctx).First(&s, models.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return s.WithDefaults(), nil
}

// Save upserts the singleton row.
func (r *SettingsRepository) Save(ctx context.Context, s models.Settings) (models.Settings, error) {
	s.ID = models.SettingsID
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&s).Error
	if err != nil {
		return models.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return r.Get(ctx)
}
