package app

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/venuepass/ticketing-api/internal/api"
	"github.com/venuepass/ticketing-api/internal/core/service"
	"github.com/venuepass/ticketing-api/internal/pkg/config"
)

func setupHTTP(cfg *config.Config, infra *Infra, log zerolog.Logger) *echo.Echo {
	dispatcher := service.NewDispatcher(infra.Sessions, infra.Provider, cfg.RequestTimeout, log)

	return api.NewRouter(api.Deps{
		Dispatcher:     dispatcher,
		Sessions:       infra.Sessions,
		DB:             infra.Provider,
		Redis:          infra.Redis,
		StaticDir:      cfg.StaticDir,
		AnalyticsVenue: cfg.AnalyticsVenue,
		Logger:         log,
	})
}
