package appointment

import (
	"context"
	"time"

	"github.com/chairman-shop/chairman/internal/audit"
	domain "github.com/chairman-shop/chairman/internal/domain/schedule"
	"github.com/chairman-shop/chairman/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// Execute marks the appointment cancelled. The row is kept for
// history; cancelled appointments never count toward availability.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
