package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-game-conf/internal/adapter"
	"github.com/MKhiriev/go-game-conf/internal/config"
	"github.com/MKhiriev/go-game-conf/internal/handler"
	"github.com/MKhiriev/go-game-conf/internal/logger"
	"github.com/MKhiriev/go-game-conf/internal/server"
	"github.com/MKhiriev/go-game-conf/internal/service"
	"github.com/MKhiriev/go-game-conf/internal/store"
	"github.com/MKhiriev/go-game-conf/internal/workers"
	"github.com/MKhiriev/go-game-conf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("game-conf-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Any("config", cfg).
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the bind address lives in the served document
	document, err := storages.DocumentStore.Read(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading config document")
	}
	address, err := document.ListenAddress()
	if err != nil {
		log.Fatal().Err(err).Msg("error reading server address from config document")
	}

	upstream, err := adapter.NewHTTPUpstreamAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream adapter")
	}

	services, err := service.NewServices(storages, upstream, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, address, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	go workers.NewWorkers(cfg, storages, upstream, log).Run(ctx)

	log.Info().
		Str("app_version", cfg.App.Version).
		Str("address", address).
		Bool("auto_update", document.AutoUpdate()).
		Msg("starting game config server")

	if err = srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
