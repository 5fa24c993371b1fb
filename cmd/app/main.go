package main

import (
	"github.com/rs/zerolog/log"

	"frs/config"
	"frs/di"
	"frs/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetOutput(cfg)
	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
