// Command update_prices estimates an ingredient cost for every catalog
// row that has none, using the lowest-price search service. Safe to
// interrupt and re-run; priced rows are skipped.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/bobfit/backend/config"
	"github.com/bobfit/backend/internal/database"
	"github.com/bobfit/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.NaverClientID == "" || cfg.NaverClientSecret == "" {
		log.Fatal("NAVER_CLIENT_ID and NAVER_CLIENT_SECRET are required")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// The ingredient price cache keeps repeated runs cheap; without
	// Redis every keyword is looked up again.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, pricing without a cache: %v", err)
		redisClient = nil
	}

	prices := service.NewPriceService(db, redisClient, cfg.NaverShopURL, cfg.NaverClientID, cfg.NaverClientSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	updated, err := prices.UpdateMissingPrices(ctx)
	if err != nil {
		log.Fatalf("Price update stopped after %d rows: %v", updated, err)
	}
	log.Printf("Updated prices for %d recipes", updated)
}
