package main

import (
	"context"
	"deskbooker/config"
	"deskbooker/di"
	"deskbooker/helper"
	"deskbooker/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup := di.InitializeService()
	http.Serve(func(_ context.Context) {
		cleanup()
	})
}
