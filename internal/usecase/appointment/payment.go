package appointment

import (
	"context"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/audit"
	"github.com/chairman-shop/chairman/internal/config"
	domain "github.com/chairman-shop/chairman/internal/domain/schedule"
	"github.com/chairman-shop/chairman/internal/models"
)

// TogglePaid flips the paid flag on an appointment and returns the new
// state.
type TogglePaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewTogglePaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *TogglePaid {
	return &TogglePaid{
		repo:  repo,
		audit: audit,
	}
}

func (uc *TogglePaid) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	ap.Paid = !ap.Paid

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_paid_toggled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ======================================================
// PAYMENT METHOD
// ======================================================

type SetPaymentMethod struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cfg   *config.Config
}

func NewSetPaymentMethod(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cfg *config.Config,
) *SetPaymentMethod {
	return &SetPaymentMethod{
		repo:  repo,
		audit: audit,
		cfg:   cfg,
	}
}

func (uc *SetPaymentMethod) Execute(
	ctx context.Context,
	appointmentID uint,
	method string,
) (*models.Appointment, error) {

	if !uc.cfg.IsPaymentMethod(method) {
		return nil, apperr.InvalidInput("payment_method", "unknown payment method")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	ap.PaymentMethod = method

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_payment_method_set",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
