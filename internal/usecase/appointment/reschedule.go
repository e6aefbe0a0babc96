package appointment

import (
	"context"
	"time"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/audit"
	"github.com/chairman-shop/chairman/internal/config"
	domain "github.com/chairman-shop/chairman/internal/domain/schedule"
	"github.com/chairman-shop/chairman/internal/models"
	"github.com/chairman-shop/chairman/internal/validate"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cfg   *config.Config
	now   func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cfg *config.Config,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Execute moves an appointment to newStart, re-checking availability
// with the appointment excluded from its own conflict set. On any
// failure the stored appointment is untouched.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	newStart time.Time,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	if !uc.cfg.Schedule.AllowBackdated {
		if err := validate.FutureTime(newStart, uc.now()); err != nil {
			uc.fail("appointment_rescheduled", &appointmentID, err)
			return nil, err
		}
	}

	if err := validate.WithinBusinessHours(newStart, uc.cfg.Schedule); err != nil {
		uc.fail("appointment_rescheduled", &appointmentID, err)
		return nil, err
	}

	duration := time.Duration(ap.DurationMin) * time.Minute
	buffer := time.Duration(ap.BufferMin) * time.Minute

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		dayStart, dayEnd := domain.DayWindow(newStart)

		existing, err := tx.ListBlockingForDay(ctx, dayStart, dayEnd)
		if err != nil {
			return err
		}

		if !domain.IsTimeAvailable(existing, newStart, duration, buffer, ap.ID) {
			return apperr.TimeSlotUnavailable("new slot overlaps an existing appointment")
		}

		if err := domain.Move(ap, newStart); err != nil {
			return err
		}

		return tx.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		uc.fail("appointment_rescheduled", &appointmentID, err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *RescheduleAppointment) fail(action string, id *uint, err error) {
	outcome := "failure"
	if kind, ok := apperr.KindOf(err); ok {
		outcome = string(kind)
	}
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: id,
		Outcome:  outcome,
	})
}
