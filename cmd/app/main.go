package main

import (
	"github.com/rs/zerolog/log"

	"rental/config"
	"rental/di"
	"rental/helper"
	"rental/shared/logger"
)

// @title Rental API
// @version 1.0
// @description Property rental marketplace: listings, bookings, renter and agent accounts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.UseJSONOutput(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
