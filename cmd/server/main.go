package main

import (
	"context"
	"fmt"

	"github.com/caltrack/caltrack/internal/config"
	"github.com/caltrack/caltrack/internal/handler"
	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/server"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/internal/store"
	"github.com/caltrack/caltrack/web"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("caltrack-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	if err := repositories.Catalog.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding food catalog")
	}

	services, err := service.NewServices(repositories, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	templates, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing templates")
	}

	handlers, err := handler.NewHandlers(services, templates, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
