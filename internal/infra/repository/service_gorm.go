package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/models"
	usecase "github.com/chairman-shop/chairman/internal/usecase/service"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("service")
		}
		return nil, apperr.Persistence(err)
	}
	return &svc, nil
}

func (r *ServiceGormRepository) List(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return services, nil
}

func (r *ServiceGormRepository) Search(
	ctx context.Context,
	query string,
) ([]models.Service, error) {

	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", like).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return services, nil
}

func (r *ServiceGormRepository) Create(
	ctx context.Context,
	s *models.Service,
) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	s *models.Service,
) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	if err := r.db.WithContext(ctx).
		Delete(&models.Service{}, id).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (r *ServiceGormRepository) NameTaken(
	ctx context.Context,
	name string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))

	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperr.Persistence(err)
	}
	return count > 0, nil
}

func (r *ServiceGormRepository) HasAppointments(
	ctx context.Context,
	serviceID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error; err != nil {
		return false, apperr.Persistence(err)
	}
	return count > 0, nil
}

// Compile-time check
var _ usecase.Repository = (*ServiceGormRepository)(nil)
