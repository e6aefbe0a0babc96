package schedule

import (
	"time"

	"github.com/chairman-shop/chairman/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

func MarkNoShow(ap *models.Appointment) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

// Move shifts a scheduled appointment to a new start, preserving the
// duration snapshot taken at booking time.
func Move(ap *models.Appointment, newStart time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.StartTime = newStart
	ap.EndTime = newStart.Add(time.Duration(ap.DurationMin) * time.Minute)
	return nil
}
