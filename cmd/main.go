package main

import (
	"os"

	"github.com/angeloszaimis/duolog/config"
	"github.com/angeloszaimis/duolog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	opts := cfg.LoggerOptions()
	log := logger.New(opts)
	logger.SetDefault(log)

	log.Info("logger configured", logger.Metadata{
		"environment": cfg.Environment,
		"level":       cfg.Logging.Level,
	})

	runShowcase(opts)
}
