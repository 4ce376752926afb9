package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "X-Requested-With, Content-Type"
)

// CORS stamps the cross-origin headers on every response, including errors
// and unknown routes, and answers any OPTIONS request with an empty 200.
//
// echo's middleware.CORS only emits headers when the request carries an
// Origin, so it is registered with e.Pre instead of relying on that.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, corsAllowOrigin)
			h.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
