package main

import (
	"fmt"

	"github.com/MKhiriev/go-content-admin/internal/adapter"
	"github.com/MKhiriev/go-content-admin/internal/client"
	"github.com/MKhiriev/go-content-admin/internal/config"
	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/service"
	"github.com/MKhiriev/go-content-admin/internal/store"
	"github.com/MKhiriev/go-content-admin/internal/tui"
	"github.com/MKhiriev/go-content-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewClientLogger("go-content-admin")
	log.Info().Object("build", buildInfo).Msg("starting")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	apis, err := client.NewContentAPIs(cfg.Adapter, cfg.App.APIToken, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create content adapters")
	}

	uploads, err := adapter.NewUploadService(cfg.Upload, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create upload service")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(cfg.Sync, apis, uploads, localStorage, log)

	ui, err := tui.New(services, models.Resource(cfg.App.Resource), cfg.Sync.SearchDebounce, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run()
	if err = localStorage.Close(); err != nil {
		log.Error().Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}
