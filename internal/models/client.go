package models

import "time"

// Client is a walk-in record, no login attached.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Notes string `gorm:"size:500" json:"notes"`

	NoShowCount int `gorm:"default:0" json:"no_show_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
