package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ngmaloney/surf-terminal/internal/api"
	"github.com/ngmaloney/surf-terminal/internal/conditions"
	"github.com/ngmaloney/surf-terminal/internal/logging"
	"github.com/ngmaloney/surf-terminal/internal/openmeteo"
	"github.com/ngmaloney/surf-terminal/internal/readings"
)

const serviceName = "surfcheck-api"

func main() {
	addr := flag.String("addr", getEnv("SURFCHECK_ADDR", ":8080"), "Listen address")
	dbPath := flag.String("db", getEnv("SURFCHECK_DB", ""), "Readings history sqlite file (empty disables history)")
	logLevel := flag.String("log-level", getEnv("SURFCHECK_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(os.Stdout, serviceName, level)

	if err := run(log, *addr, *dbPath); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, addr, dbPath string) error {
	pipeline := conditions.NewPipelineWithClients(
		openmeteo.NewMarineClientWithURL(getEnv("SURFCHECK_MARINE_URL", openmeteo.DefaultMarineURL)),
		openmeteo.NewForecastClientWithURL(getEnv("SURFCHECK_FORECAST_URL", openmeteo.DefaultForecastURL)),
		log,
	)

	var store api.ReadingStore
	if dbPath != "" {
		repo := readings.NewRepository(dbPath)
		if err := repo.Init(); err != nil {
			return fmt.Errorf("initializing readings database: %w", err)
		}
		store = repo
		log.Info().Str("db", dbPath).Msg("readings history enabled")
	}

	handlers := api.NewHandlers(pipeline, store, log)
	router := api.NewRouter(handlers, log)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	case err := <-errCh:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
