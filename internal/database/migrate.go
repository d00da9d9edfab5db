package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/models"
)

// Migrate creates or updates the schema for every persisted model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.Vote{},
		&models.Reward{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
