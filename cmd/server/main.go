package main

import (
	"context"
	"fmt"

	"github.com/centraplate/registry/internal/config"
	handler "github.com/centraplate/registry/internal/handler/http"
	"github.com/centraplate/registry/internal/logger"
	"github.com/centraplate/registry/internal/mailer"
	"github.com/centraplate/registry/internal/server"
	"github.com/centraplate/registry/internal/service"
	"github.com/centraplate/registry/internal/store"
	"github.com/centraplate/registry/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	sender := mailer.NewMailer(cfg.Mailer, log)
	services := service.NewServices(storages, sender, *cfg, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	background := workers.NewWorkers(
		workers.NewOtpSweeper(storages.OtpRepository, cfg.Otp.SweepInterval, log),
	)
	background.Run(workersCtx)

	srv.RunServer()
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
