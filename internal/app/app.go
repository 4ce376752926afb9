// Package app assembles the API server from configuration.
package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/venuepass/ticketing-api/internal/pkg/config"
)

type App struct {
	httpServer *http.Server
	echo       *echo.Echo
	cleanup    func() error
	log        zerolog.Logger
}

// New wires the infrastructure and the router. The database is not required to
// be reachable at startup: each request opens its own connection and reports
// a failure on its own.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	infra, err := setupInfra(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	e := setupHTTP(cfg, infra, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		httpServer: server,
		echo:       e,
		cleanup:    infra.Close,
		log:        log,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.echo
}

// Run serves until Shutdown is called.
func (a *App) Run() error {
	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and releases
// the database pools and the Redis client.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
