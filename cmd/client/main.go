package main

import (
	"fmt"

	"github.com/MKhiriev/shield-chat/internal/adapter"
	"github.com/MKhiriev/shield-chat/internal/client"
	"github.com/MKhiriev/shield-chat/internal/config"
	"github.com/MKhiriev/shield-chat/internal/logger"
	"github.com/MKhiriev/shield-chat/internal/service"
	"github.com/MKhiriev/shield-chat/internal/store"
	"github.com/MKhiriev/shield-chat/internal/tui"
	"github.com/MKhiriev/shield-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("shield-chat")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storeAdapter, err := adapter.NewHTTPStoreAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create store adapter")
	}
	if cfg.App.AuthToken != "" {
		storeAdapter.SetToken(cfg.App.AuthToken)
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, storeAdapter, cfg.Workers.PollInterval, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
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
