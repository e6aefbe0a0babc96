package schedule

import (
	"context"
	"time"

	"github.com/chairman-shop/chairman/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// GetAppointment resolves client and service for display.
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Day queries --------

	// ListBlockingForDay returns the day's appointments that still
	// count toward availability, ordered by start.
	ListBlockingForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// ListForDay returns all of the day's appointments with client
	// and service resolved, ordered by start.
	ListForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Writes --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	IncrementClientNoShow(
		ctx context.Context,
		clientID uint,
	) error

	// InTx runs fn against a repository bound to one transaction.
	// The availability check and the write of a booking must share a
	// transaction so a failure leaves the store untouched.
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
