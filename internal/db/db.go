package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nihalpictures/studio-api/internal/config"
	"github.com/nihalpictures/studio-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ServicePackage{},
		&models.MediaItem{},
		&models.Booking{},
		&models.Payment{},
		&models.SiteSetting{},
		&models.VisitorStats{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Rows written before the status label set was closed may carry an
	// empty status.
	db.Exec(`
        UPDATE bookings
        SET status = 'Requested'
        WHERE status IS NULL OR status = ''
    `)

	return db
}
