package main

import (
	"context"
	"log"

	"github.com/bobfit/backend/config"
	"github.com/bobfit/backend/internal/database"
	"github.com/bobfit/backend/internal/llm"
	"github.com/bobfit/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Redis backs the rate limiter and the plan/price caches; the
	// server runs without it, minus those features.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without caching and rate limiting: %v", err)
		redisClient = nil
	}

	var generator llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		generator, err = llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create text generator: %v", err)
		}
		defer generator.Close()
	} else {
		log.Printf("GEMINI_API_KEY not set, plan generation disabled")
	}

	srv := server.NewServer(server.Options{
		DB:        db,
		Redis:     redisClient,
		Generator: generator,
		JWTSecret: cfg.JWTSecret,
	})

	log.Printf("Starting server on :%s", cfg.ServerPort)
	if err := srv.Start(cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
