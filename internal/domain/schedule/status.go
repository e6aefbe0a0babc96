package schedule

import "github.com/chairman-shop/chairman/internal/apperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

// Cancelled, completed and no-show are terminal. Reschedule is a
// self-transition on scheduled.

func InitialStatus() Status {
	return StatusScheduled
}

// IsTerminal reports whether no further transition is allowed.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusNoShow
}

// Blocks reports whether an appointment in this status still counts
// toward availability checks.
func Blocks(s Status) bool {
	return s == StatusScheduled
}

// ===============================
// Transition guards
// ===============================

func CanCancel(current Status) error {
	if current != StatusScheduled {
		return apperr.Error{Kind: apperr.KindInvalidInput, Field: "status", Message: "appointment is not scheduled"}
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusScheduled {
		return apperr.Error{Kind: apperr.KindInvalidInput, Field: "status", Message: "appointment is not scheduled"}
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current != StatusScheduled {
		return apperr.Error{Kind: apperr.KindInvalidInput, Field: "status", Message: "appointment is not scheduled"}
	}
	return nil
}

func CanReschedule(current Status) error {
	if current != StatusScheduled {
		return apperr.Error{Kind: apperr.KindInvalidInput, Field: "status", Message: "appointment is not scheduled"}
	}
	return nil
}
