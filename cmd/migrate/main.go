package main

import (
	"deskbooker/config"
	"deskbooker/helper"
	"deskbooker/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, drop or step-up")
	}

	action := helper.Action(os.Args[1])
	if !action.Valid() {
		log.Fatal().Str("action", os.Args[1]).Msg("Invalid action. Use 'up', 'down', 'drop' or 'step-up'")
	}

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Msg("Migration failed")
	}
}
