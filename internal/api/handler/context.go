package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/venuepass/ticketing-api/internal/core/domain"
	"github.com/venuepass/ticketing-api/internal/core/ports"
)

// ctxCall builds a dispatch call from the identity and role injected by the
// Session middleware. A request that bypassed the middleware runs as User.
func ctxCall(c echo.Context, op ports.Operation) ports.Call {
	identity, _ := c.Get("identity").(string)
	role, _ := c.Get("role").(domain.Role)
	return ports.Call{
		Identity: identity,
		Role:     domain.ParseRole(string(role)),
		Op:       op,
	}
}

// dispatch runs op for the caller and writes its envelope.
func dispatch(c echo.Context, d ports.Dispatcher, op ports.Operation) error {
	env, err := d.Dispatch(c.Request().Context(), ctxCall(c, op))
	if err != nil {
		return err
	}
	return c.JSON(env.Status, env.Body)
}

// bindAndValidate decodes the JSON body into req and validates it. Decoding
// failures and validation failures are both client errors.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Invalid("invalid payload")
	}
	return c.Validate(req)
}
