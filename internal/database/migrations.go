package database

import (
	"gorm.io/gorm"

	"github.com/rentalkita/rentalkita-backend/internal/models"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.Vehicle{},
		&models.Booking{},
	)
	if err != nil {
		return err
	}

	// Columns added after the first release
	if db.Migrator().HasTable(&models.Booking{}) {
		columns := []string{
			"ADD COLUMN IF NOT EXISTS pickup_time text DEFAULT ''",
			"ADD COLUMN IF NOT EXISTS return_time text DEFAULT ''",
			"ADD COLUMN IF NOT EXISTS employee_id_url text DEFAULT ''",
			"ADD COLUMN IF NOT EXISTS train_ticket_url text DEFAULT ''",
		}

		for _, column := range columns {
			if err := db.Exec("ALTER TABLE bookings " + column).Error; err != nil {
				return err
			}
		}
	}

	if db.Migrator().HasTable(&models.Vehicle{}) {
		db.Exec(`ALTER TABLE vehicles DROP CONSTRAINT IF EXISTS vehicles_type_check`)
		db.Exec(`ALTER TABLE vehicles ADD CONSTRAINT vehicles_type_check CHECK (type IN ('mobil', 'motor'))`)
	}

	return nil
}
