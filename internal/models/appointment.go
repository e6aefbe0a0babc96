package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	StartTime time.Time `json:"start_time"`

	// EndTime is always StartTime plus the service duration as it was
	// at booking time. Later edits to the service never touch it.
	EndTime time.Time `json:"end_time"`

	// Duration and buffer snapshotted at booking time. Names and
	// prices stay live references; only the time math is frozen.
	DurationMin int `json:"duration_min"`
	BufferMin   int `json:"buffer_min"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Paid          bool   `gorm:"default:false" json:"paid"`
	PaymentMethod string `gorm:"size:30" json:"payment_method"`

	Notes string `gorm:"size:500" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlockedUntil is the end of the interval this appointment occupies on
// the schedule: service end plus the trailing buffer.
func (a *Appointment) BlockedUntil() time.Time {
	return a.EndTime.Add(time.Duration(a.BufferMin) * time.Minute)
}
