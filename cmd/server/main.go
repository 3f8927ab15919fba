package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/capi-relay/internal/adapter"
	"github.com/MKhiriev/capi-relay/internal/config"
	"github.com/MKhiriev/capi-relay/internal/handler"
	"github.com/MKhiriev/capi-relay/internal/logger"
	"github.com/MKhiriev/capi-relay/internal/metrics"
	"github.com/MKhiriev/capi-relay/internal/ratelimit"
	"github.com/MKhiriev/capi-relay/internal/server"
	"github.com/MKhiriev/capi-relay/internal/service"
	"github.com/MKhiriev/capi-relay/internal/store"
	"github.com/MKhiriev/capi-relay/internal/workers"
	"github.com/MKhiriev/capi-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("capi-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Str("capi_base_url", cfg.CAPI.BaseURL).
		Str("capi_version", cfg.CAPI.APIVersion).
		Int("rate_limit", cfg.RateLimit.Requests).
		Dur("rate_window", cfg.RateLimit.Window).
		Bool("redis", cfg.RateLimit.RedisURL != "").
		Str("failed_events_path", cfg.FailedEvents.Path).
		Msg("received configs")

	m := metrics.New()

	capi, err := adapter.NewCAPIAdapter(cfg.CAPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating conversions api adapter")
	}

	storages, err := store.NewStorages(cfg.FailedEvents, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	limiter, err := ratelimit.NewLimiter(context.Background(), cfg.RateLimit, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}
	defer limiter.Close()

	services := service.NewServices(capi, storages, cfg, buildInfo, m, log)

	handlers, err := handler.NewHandlers(services, limiter.Store, m, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), workers.NewWorkers(limiter.Workers...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
