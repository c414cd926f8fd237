package database

import (
	"fmt"
	"os"

	"github.com/modorcea/rentacar-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates or updates the schema for all record types.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.Reservation{},
		&models.VerificationCode{},
	)
	if err != nil {
		return err
	}

	// Rows imported from the previous system carry no status.
	if db.Migrator().HasTable(&models.Reservation{}) {
		if err := db.Exec(`UPDATE reservations SET status = 'Pending' WHERE status IS NULL OR status = ''`).Error; err != nil {
			return err
		}
	}

	return nil
}
