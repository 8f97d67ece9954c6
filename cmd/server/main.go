package main

import (
	"context"
	"os"

	"github.com/footfallz/validation-server/api"
	"github.com/footfallz/validation-server/pkg/config"
	"github.com/footfallz/validation-server/pkg/httpserver"
	"github.com/footfallz/validation-server/pkg/logger"
	"github.com/footfallz/validation-server/pkg/requestid"
	"github.com/footfallz/validation-server/pkg/tools"
)

type appConfig struct {
	ServiceName string `env:"APP_NAME" envDefault:"validation-server"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`

	Log  logger.Config
	HTTP httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log,
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	registry := tools.NewRegistry()
	if err := tools.RegisterValidators(registry); err != nil {
		log.Error("failed to register validators", logger.Error(err))
		os.Exit(1)
	}

	handler := api.New(log, registry, api.Info{
		Service: cfg.ServiceName,
		Version: cfg.Version,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), handler); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}
