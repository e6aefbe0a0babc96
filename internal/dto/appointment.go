package dto

import "time"

// AppointmentDetail is the resolved view of an appointment: raw fields
// plus display fields joined from the live client and service records.
// One canonical name per field.
type AppointmentDetail struct {
	AppointmentID uint      `json:"appointment_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	Paid          bool      `json:"paid"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	ServiceID       uint    `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceDuration int     `json:"service_duration"`
	ServiceBuffer   int     `json:"service_buffer"`
}

// TimeSlot is one bookable opening in a day's schedule.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
