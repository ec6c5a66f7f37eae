package main

import (
	"fmt"

	"github.com/amekhanov/drill-journal/internal/adapter"
	"github.com/amekhanov/drill-journal/internal/client"
	"github.com/amekhanov/drill-journal/internal/config"
	"github.com/amekhanov/drill-journal/internal/connectivity"
	"github.com/amekhanov/drill-journal/internal/logger"
	"github.com/amekhanov/drill-journal/internal/presenter"
	"github.com/amekhanov/drill-journal/internal/service"
	"github.com/amekhanov/drill-journal/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("drill-journal-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	console := presenter.NewConsole(nil, cfg.App.NoticeDuration)
	services := service.NewServices(storages, serverAdapter, console)
	source := connectivity.NewProbeSource(serverAdapter, cfg.Workers.ProbeInterval, log)

	app, err := client.NewApp(services, console, source, log)
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
