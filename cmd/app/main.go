package main

import (
	"context"
	"easybooking/config"
	"easybooking/di"
	"easybooking/helper"
	"easybooking/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

// @title Easybooking API
// @version 1.0
// @description Room reservation scheduling API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer access token
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	logger.SetOutput(cfg)

	if cfg.DB.Driver == config.DBDriverPostgres && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeService()

	if err := app.Cron.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start background jobs")
	}

	if err := app.HTTP.Serve(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := app.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}
}
