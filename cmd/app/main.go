package main

import (
	"agendador/config"
	"agendador/di"
	"agendador/helper"
	"agendador/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Agendador API
// @version 1.0
// @description Room reservation scheduling.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
