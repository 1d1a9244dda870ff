package main

import (
	"github.com/rs/zerolog/log"

	"tourbook/config"
	"tourbook/di"
	"tourbook/helper"
	"tourbook/shared/logger"
	"tourbook/shared/timezone"
)

// @title Tourbook API
// @version 1.0
// @description Create and list tour bookings for the signed-in user.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
