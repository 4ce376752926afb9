package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/venuepass/ticketing-api/internal/core/ports"
	"github.com/venuepass/ticketing-api/internal/core/service"
)

// AuthHandler serves login and user registration.
type AuthHandler struct {
	dispatcher ports.Dispatcher
}

func NewAuthHandler(dispatcher ports.Dispatcher) *AuthHandler {
	return &AuthHandler{dispatcher: dispatcher}
}

// Login binds the role of the named user to the caller's address.
//
// @Summary      Login by first name
// @Description  Looks up the first user with the given FName and binds their role to the caller's IP address.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "First name"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return dispatch(c, h.dispatcher, service.Login(req.FName))
}

// Register creates a new user.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User names"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return dispatch(c, h.dispatcher, service.RegisterUser(ports.RegisterUserInput{
		FName: req.FName,
		LName: req.LName,
	}))
}
