package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"outfiter/app"
	"outfiter/config"
	"outfiter/db"
	"outfiter/logging"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		// Use Overload to ensure .env values override system environment variables
		envPath := ".env"
		if err := godotenv.Overload(envPath); err != nil {
			log.Warn().Str("path", envPath).Msg("⚠️  .env file not found, using system environment variables")
		} else {
			log.Info().Str("path", envPath).Msg("✓ Loaded environment variables (overriding system variables)")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config failed")
	}
	logging.Setup(cfg.LogLevel, cfg.IsProduction())

	// Initialize application
	ctx := context.Background()
	handler, err := app.Initialize(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Cannot start: catalog unavailable")
	}
	defer db.CloseDB()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker)
	addr := "0.0.0.0:" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", addr).Str("catalog_source", cfg.CatalogSource).Msg("🚀 Server starting")
	log.Info().Msgf("Generate endpoint: POST http://localhost:%s/outfits/generate", cfg.Port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
