package db

import (
	"log"
	"time"

	"github.com/glamora/booking-api/internal/config"
	"github.com/glamora/booking-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.BlockedTime{},
		&models.Transaction{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Backstop against the check-then-insert race: at most one live
	// appointment per artist per day, enforced by the storage layer.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_appointments_artist_day_live
        ON appointments (artist_id, appointment_date)
        WHERE status IN ('pending', 'confirmed')
    `)

	return db
}
