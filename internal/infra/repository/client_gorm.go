package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/models"
	usecase "github.com/chairman-shop/chairman/internal/usecase/client"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("client")
		}
		return nil, apperr.Persistence(err)
	}
	return &client, nil
}

func (r *ClientGormRepository) List(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return clients, nil
}

func (r *ClientGormRepository) Search(
	ctx context.Context,
	query string,
) ([]models.Client, error) {

	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return clients, nil
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	c *models.Client,
) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	if err := r.db.WithContext(ctx).
		Delete(&models.Client{}, id).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (r *ClientGormRepository) NameTaken(
	ctx context.Context,
	name string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Client{}).
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

func (r *ClientGormRepository) HasAppointments(
	ctx context.Context,
	clientID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {
		return false, apperr.Persistence(err)
	}
	return count > 0, nil
}

func (r *ClientGormRepository) IncrementNoShow(
	ctx context.Context,
	clientID uint,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		UpdateColumn("no_show_count", gorm.Expr("no_show_count + 1"))

	if res.Error != nil {
		return apperr.Persistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("client")
	}
	return nil
}

// Compile-time check
var _ usecase.Repository = (*ClientGormRepository)(nil)
