package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	// Minutes blocked after the service before the next appointment
	// may start.
	BufferMin int `gorm:"default:0" json:"buffer_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
