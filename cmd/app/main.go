package main

import (
	"github.com/rs/zerolog/log"

	"mesa/config"
	"mesa/di"
	"mesa/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Sweeper.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start reservation sweeper")
	}

	defer func() {
		if err := app.Sweeper.Stop(); err != nil {
			log.Error().Err(err).Msg("Failed to stop reservation sweeper")
		}
	}()

	app.HTTP.Serve()
}
