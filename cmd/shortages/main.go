package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shortage-keeper/internal/client"
	"github.com/MKhiriev/go-shortage-keeper/internal/config"
	"github.com/MKhiriev/go-shortage-keeper/internal/logger"
	"github.com/MKhiriev/go-shortage-keeper/internal/service"
	"github.com/MKhiriev/go-shortage-keeper/internal/store"
	"github.com/MKhiriev/go-shortage-keeper/internal/tui"
	"github.com/MKhiriev/go-shortage-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("shortages").Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the UI, so everything is logged to a file
	log := logger.NewFileLogger("shortages", cfg.Log.FilePath, cfg.Log.ZerologLevel())
	log.Info().Str("version", buildInfo.BuildVersion()).Str("commit", buildInfo.BuildCommit()).Msg("starting")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = log.WithContext(ctx)

	if err = run(ctx, cfg, buildInfo, log); err != nil {
		stop()
		log.Fatal().Err(err).Msg("shortages run error")
	}
	stop()
}

func run(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(ctx, storages, cfg.App, buildInfo, log)
	if err != nil {
		return err
	}

	ui, err := tui.New(services, log)
	if err != nil {
		return err
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
