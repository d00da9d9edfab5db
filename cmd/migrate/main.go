package main

import (
	"log"
	"time"

	"github.com/bobfit/backend/config"
	"github.com/bobfit/backend/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The migrator often starts alongside the database container, so
	// wait for it to accept connections before migrating.
	if cfg.DBDriver == "postgres" {
		if err := database.WaitForPostgres(cfg, 30, time.Second); err != nil {
			log.Fatalf("Database not ready: %v", err)
		}
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("All migrations applied successfully.")
}
