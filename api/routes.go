package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/procurement-reports/internal/handlers/v1/costreduction"
	"github.com/carson-networks/procurement-reports/internal/handlers/v1/status"
	"github.com/carson-networks/procurement-reports/internal/handlers/v1/suppliers"
	"github.com/carson-networks/procurement-reports/internal/logging"
	"github.com/carson-networks/procurement-reports/internal/service"
)

const apiVersion = "1.0.0"

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// Handler builds the router with every report endpoint and /status mounted.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Procurement Reports", apiVersion))
	api.UseMiddleware(logging.NewHumaMiddleware(r.Logger))

	costreduction.NewGetCostReductionHandler(r.Service.Reports).Register(api)
	costreduction.NewDownloadCostReductionHandler(r.Service.Reports).Register(api)
	suppliers.NewGetTopSuppliersHandler(r.Service.Reports).Register(api)
	suppliers.NewDownloadTopSuppliersHandler(r.Service.Reports).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
