package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"roicalc/internal/delivery"
	"roicalc/internal/usecase"
	"roicalc/pkg/config"
	"roicalc/pkg/logger"
	"roicalc/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	m := metrics.New(prometheus.DefaultRegisterer)

	calculatorService := usecase.NewCalculatorService(cfg.Assumptions, log, m)
	handlers := delivery.NewHTTPHandlers(calculatorService, log, m)
	router := delivery.NewHTTPRouter(handlers, cfg, log, m, prometheus.DefaultGatherer).SetupRoutes()

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithFields(map[string]any{
			"port":     cfg.Server.Port,
			"policies": cfg.Assumptions.Policies,
		}).Info("Starting server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Forced shutdown")
		os.Exit(1)
	}

	log.Info("Server stopped")
}
