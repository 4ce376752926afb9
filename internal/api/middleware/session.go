package middleware

import (
	"net"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

// Session resolves the caller's role and injects "identity" and "role" into
// the context.
//
// The identity is the host part of the TCP peer address. Forwarded headers are
// ignored, so every client behind the same proxy or NAT shares one session.
func Session(store ports.SessionStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := PeerIdentity(c)

			role, err := store.Resolve(c.Request().Context(), identity)
			if err != nil {
				log.Warn().Err(err).Str("identity", identity).Msg("session lookup failed, using User role")
				role = domain.RoleUser
			}

			c.Set("identity", identity)
			c.Set("role", role)
			return next(c)
		}
	}
}

// PeerIdentity returns the host of the request's remote address.
func PeerIdentity(c echo.Context) string {
	addr := c.Request().RemoteAddr
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
