package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/procurement-reports/api"
	"github.com/carson-networks/procurement-reports/internal/config"
	"github.com/carson-networks/procurement-reports/internal/logging"
	"github.com/carson-networks/procurement-reports/internal/service"
	"github.com/carson-networks/procurement-reports/internal/source"
	"github.com/carson-networks/procurement-reports/internal/spreadsheet"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("sourceURL", envConfig.SourceURL).Info("procurement-reports starting")

	fetcher := source.NewHTTPFetcher(
		source.WithTimeout(envConfig.FetchTimeout),
		source.WithHeader("User-Agent", source.UserAgent),
		source.WithLogger(logger),
	)
	svc := service.NewService(fetcher, spreadsheet.NewWriter(), envConfig.SourceURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
	}
	httpRest.Serve(ctx)
}
