package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-dominance/internal/api"
	"go-dominance/internal/config"
)

// @title Dominance API
// @version 1.0
// @description Dominant-category aggregation over tabular data, with color ramps, charts, map data and exports.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Create router and start server
	r := api.NewRouter(cfg)
	if err := r.Start(cfg.Addr, cfg.ShutdownTimeout); err != nil {
		log.Fatal().Err(err).Msg("❌ Server stopped")
	}
}
