package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/venuepass/ticketing-api/internal/app"
	"github.com/venuepass/ticketing-api/internal/pkg/config"
	"github.com/venuepass/ticketing-api/pkg/logger"
)

// @title        Venue Ticketing API
// @version      1.0
// @description  Role-scoped ticketing API. The caller's role is bound to their IP address at login.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "ticketing-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize app")
	}

	go func() {
		if err := application.Run(); err != nil {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("session_backend", cfg.SessionBackend).Msg("ticketing-api started")

	<-ctx.Done()

	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("ticketing-api stopped cleanly")
}
