package database

import (
	"fmt"

	"github.com/Jun878787/northsea-bot/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Transaction{},
		&models.ExchangeRate{},
		&models.Fund{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
