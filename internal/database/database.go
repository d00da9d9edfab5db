// Package database owns connection setup and schema migration for the
// profile, catalog, vote and reward stores.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bobfit/backend/config"
)

// New opens the database selected by the configuration.
func New(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		log.Printf("Opening SQLite database at %s", cfg.SQLitePath)
		return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	case "postgres":
		log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)
		db, err := gorm.Open(postgres.Open(postgresDSN(cfg)), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("error opening database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}
}

// WaitForPostgres blocks until the database accepts connections or the
// attempts run out. Used by migration and seeding commands that start
// alongside the database container.
func WaitForPostgres(cfg *config.Config, attempts int, interval time.Duration) error {
	db, err := sql.Open("postgres", postgresDSN(cfg))
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer db.Close()

	for i := 0; i < attempts; i++ {
		if err = db.Ping(); err == nil {
			log.Printf("Successfully connected to database")
			return nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", i+1, attempts, err)
		time.Sleep(interval)
	}
	return fmt.Errorf("database did not become ready: %w", err)
}

func postgresDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)
}
