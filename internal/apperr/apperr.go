package apperr

import "errors"

// ===============================
// Failure Kinds
// ===============================

type Kind string

const (
	KindNotFound                 Kind = "not_found"
	KindInvalidInput             Kind = "invalid_input"
	KindDuplicateEntity          Kind = "duplicate_entity"
	KindTimeSlotUnavailable      Kind = "time_slot_unavailable"
	KindInThePast                Kind = "in_the_past"
	KindHasDependentAppointments Kind = "has_dependent_appointments"
	KindPersistenceFailure       Kind = "persistence_failure"
)

// Error is the single failure value every operation returns on the
// unhappy path. Callers match on Kind; Message is diagnostic only and
// never shown to end users directly.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e Error) Error() string {
	if e.Field != "" {
		return string(e.Kind) + ": " + e.Field + ": " + e.Message
	}
	if e.Message != "" {
		return string(e.Kind) + ": " + e.Message
	}
	return string(e.Kind)
}

// ===============================
// Constructors
// ===============================

func NotFound(entity string) error {
	return Error{Kind: KindNotFound, Message: entity + " not found"}
}

func InvalidInput(field, message string) error {
	return Error{Kind: KindInvalidInput, Field: field, Message: message}
}

func Duplicate(entity, name string) error {
	return Error{Kind: KindDuplicateEntity, Message: entity + " '" + name + "' already exists"}
}

func TimeSlotUnavailable(message string) error {
	return Error{Kind: KindTimeSlotUnavailable, Message: message}
}

func InThePast() error {
	return Error{Kind: KindInThePast, Message: "start time is in the past"}
}

func HasDependentAppointments(entity string) error {
	return Error{Kind: KindHasDependentAppointments, Message: entity + " has appointments referencing it"}
}

// Persistence wraps a store-level fault so callers never see a raw
// driver error cross the operation boundary.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	return Error{Kind: KindPersistenceFailure, Message: err.Error()}
}

// ===============================
// Matching
// ===============================

func Is(err error, kind Kind) bool {
	var ae Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

func KindOf(err error) (Kind, bool) {
	var ae Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}
