package appointment

import (
	"context"
	"time"

	domain "github.com/chairman-shop/chairman/internal/domain/schedule"
	"github.com/chairman-shop/chairman/internal/dto"
	"github.com/chairman-shop/chairman/internal/models"
)

type ListForDate struct {
	repo domain.Repository
}

func NewListForDate(repo domain.Repository) *ListForDate {
	return &ListForDate{repo: repo}
}

// Execute returns the day's appointments with client and service
// resolved at read time, so renames show up immediately. Only the
// duration and buffer are the booking-time snapshot.
func (uc *ListForDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentDetail, error) {

	dayStart, dayEnd := domain.DayWindow(date)

	appointments, err := uc.repo.ListForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDetail, 0, len(appointments))
	for i := range appointments {
		out = append(out, toDetail(&appointments[i]))
	}

	return out, nil
}

// ======================================================
// GET ONE
// ======================================================

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*dto.AppointmentDetail, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	detail := toDetail(ap)
	return &detail, nil
}

func toDetail(ap *models.Appointment) dto.AppointmentDetail {
	return dto.AppointmentDetail{
		AppointmentID: ap.ID,
		StartTime:     ap.StartTime,
		EndTime:       ap.EndTime,
		Status:        ap.Status,
		Paid:          ap.Paid,
		PaymentMethod: ap.PaymentMethod,
		Notes:         ap.Notes,

		ClientID:    ap.ClientID,
		ClientName:  ap.Client.Name,
		ClientPhone: ap.Client.Phone,

		ServiceID:       ap.ServiceID,
		ServiceName:     ap.Service.Name,
		ServicePrice:    ap.Service.Price,
		ServiceDuration: ap.DurationMin,
		ServiceBuffer:   ap.BufferMin,
	}
}
