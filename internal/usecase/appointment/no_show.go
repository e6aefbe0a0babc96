package appointment

import (
	"context"

	"github.com/chairman-shop/chairman/internal/audit"
	domain "github.com/chairman-shop/chairman/internal/domain/schedule"
	"github.com/chairman-shop/chairman/internal/models"
)

type MarkNoShow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves the appointment to its terminal no-show state and
// bumps the client's no-show counter. Both writes share a transaction.
func (uc *MarkNoShow) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := domain.MarkNoShow(ap); err != nil {
		return nil, err
	}

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}
		return tx.IncrementClientNoShow(ctx, ap.ClientID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
