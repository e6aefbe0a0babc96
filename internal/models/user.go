package models

import "time"

// User is the shop operator account. Single-user application: there is
// normally exactly one row.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeviceToken is the local remember-me credential. The raw token lives
// only on the client machine; we store its hash.
type DeviceToken struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint      `gorm:"not null" json:"user_id"`
	TokenHash string    `gorm:"size:255;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
}
