package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/services"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// List returns every service, newest first.
func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	var list []models.Service
	if err := r.db.WithContext(ctx).Order("created_at desc").Order("id desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return list, nil
}

func (r *ServiceRepository) Get(ctx context.Context, id uint) (models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return models.Service{}, notFound(err)
	}
	return s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s models.Service) (models.Service, error) {
	s.ID = 0
	if err := prepareService(&s); err != nil {
		return models.Service{}, err
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return models.Service{}, fmt.Errorf("create service: %w", err)
	}
	return s, nil
}

// Update overwrites every editable field of an existing service.
func (r *ServiceRepository) Update(ctx context.Context, id uint, s models.Service) (models.Service, error) {
	if err := prepareService(&s); err != nil {
		return models.Service{}, err
	}
	existing, err := r.Get(ctx, id)
	if err != nil {
		return models.Service{}, err
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt

	err = r.db.WithContext(ctx).Model(&existing).
		Select("customer", "phone", "plate", "car", "vin", "status", "items", "price", "signature", "inspection").
		Updates(&s).Error
	if err != nil {
		return models.Service{}, fmt.Errorf("update service %d: %w", id, err)
	}
	return r.Get(ctx, id)
}

// UpdateStatus writes only the status column.
func (r *ServiceRepository) UpdateStatus(ctx context.Context, id uint, status models.ServiceStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	res := r.db.WithContext(ctx).Model(&models.Service{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update status %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete service %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func prepareService(s *models.Service) error {
	s.Customer = strings.TrimSpace(s.Customer)
	s.Plate = strings.TrimSpace(s.Plate)
	if s.Status == "" {
		s.Status = models.StatusPending
	}
	if !s.Status.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, s.Status)
	}
	if s.Items == nil {
		s.Items = []models.LineItem{}
	}
	if len(s.Items) > 0 {
		s.Items = services.Normalize(s.Items)
		s.Price = services.SumTotals(s.Items)
	}
	return nil
}
