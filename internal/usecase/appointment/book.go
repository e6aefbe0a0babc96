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

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientID  uint
	ServiceID uint
	StartTime time.Time

	Paid          bool
	PaymentMethod string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cfg   *config.Config
	now   func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cfg *config.Config,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		cfg:   cfg,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Input validation
	// --------------------------------------------------
	if err := validate.Notes(in.Notes, uc.cfg.Rules); err != nil {
		return nil, err
	}

	if !uc.cfg.IsPaymentMethod(in.PaymentMethod) {
		return nil, apperr.InvalidInput("payment_method", "unknown payment method")
	}

	// --------------------------------------------------
	// Resolve references
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Booking policy
	// --------------------------------------------------
	if !uc.cfg.Schedule.AllowBackdated {
		if err := validate.FutureTime(in.StartTime, uc.now()); err != nil {
			uc.fail("appointment_booked", nil, err)
			return nil, err
		}
	}

	if err := validate.WithinBusinessHours(in.StartTime, uc.cfg.Schedule); err != nil {
		uc.fail("appointment_booked", nil, err)
		return nil, err
	}

	duration := time.Duration(svc.DurationMin) * time.Minute
	buffer := time.Duration(svc.BufferMin) * time.Minute

	ap := &models.Appointment{
		ClientID:      client.ID,
		ServiceID:     svc.ID,
		StartTime:     in.StartTime,
		EndTime:       in.StartTime.Add(duration),
		DurationMin:   svc.DurationMin,
		BufferMin:     svc.BufferMin,
		Status:        string(domain.InitialStatus()),
		Paid:          in.Paid,
		PaymentMethod: in.PaymentMethod,
		Notes:         validate.Sanitize(in.Notes),
	}

	// --------------------------------------------------
	// Availability check + insert, one transaction
	// --------------------------------------------------
	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		dayStart, dayEnd := domain.DayWindow(in.StartTime)

		existing, err := tx.ListBlockingForDay(ctx, dayStart, dayEnd)
		if err != nil {
			return err
		}

		if !domain.IsTimeAvailable(existing, in.StartTime, duration, buffer, 0) {
			return apperr.TimeSlotUnavailable("requested slot overlaps an existing appointment")
		}

		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		uc.fail("appointment_booked", nil, err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *BookAppointment) fail(action string, id *uint, err error) {
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
