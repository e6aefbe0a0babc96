package db

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chairman-shop/chairman/internal/models"
)

// Open opens (or creates) the embedded database file and migrates the
// schema. Use ":memory:" for throwaway test databases.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.DeviceToken{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
