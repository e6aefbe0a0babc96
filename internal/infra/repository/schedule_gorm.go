package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chairman-shop/chairman/internal/apperr"
	domain "github.com/chairman-shop/chairman/internal/domain/schedule"
	"github.com/chairman-shop/chairman/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *ScheduleGormRepository) GetClient(
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

func (r *ScheduleGormRepository) GetService(
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

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("appointment")
		}
		return nil, apperr.Persistence(err)
	}
	return &ap, nil
}

// --------------------------------------------------
// Day queries
// --------------------------------------------------

func (r *ScheduleGormRepository) ListBlockingForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND start_time >= ? AND start_time < ?",
			string(domain.StatusScheduled), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, apperr.Persistence(err)
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListForDay(
	ctx context.Context,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"start_time >= ? AND start_time < ?",
			dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, apperr.Persistence(err)
	}

	return apps, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// The appointment row only; preloaded associations stay untouched.
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error; err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

func (r *ScheduleGormRepository) IncrementClientNoShow(
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

// InTx binds a repository to one gorm transaction; the callback's
// error aborts and rolls back.
func (r *ScheduleGormRepository) InTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
