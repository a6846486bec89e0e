package main

import (
	"context"
	"fmt"

	"github.com/mkhalitov/taskvault/internal/adapter"
	"github.com/mkhalitov/taskvault/internal/client"
	"github.com/mkhalitov/taskvault/internal/config"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/internal/service"
	"github.com/mkhalitov/taskvault/internal/store"
	"github.com/mkhalitov/taskvault/internal/tui"
	"github.com/mkhalitov/taskvault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("taskvault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	cache, err := store.NewCacheStorages(context.Background(), cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local cache")
	}
	defer func() {
		if closeErr := cache.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("close local cache")
		}
	}()

	services := service.NewServices(cache, backendAdapter, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
