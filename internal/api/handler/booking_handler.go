package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/venuepass/ticketing-api/internal/core/ports"
	"github.com/venuepass/ticketing-api/internal/core/service"
)

// BookingHandler serves the transactional write endpoints and the profile.
type BookingHandler struct {
	dispatcher ports.Dispatcher
}

func NewBookingHandler(dispatcher ports.Dispatcher) *BookingHandler {
	return &BookingHandler{dispatcher: dispatcher}
}

// BookTicket handles POST /api/book_ticket.
//
// @Summary      Book a ticket
// @Description  Creates the ticket and its Credit Card payment in one transaction.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      bookTicketRequest  true  "Booking"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/book_ticket [post]
func (h *BookingHandler) BookTicket(c echo.Context) error {
	var req bookTicketRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return dispatch(c, h.dispatcher, service.BookTicket(ports.BookTicketInput{
		UserID:     *req.UserID,
		EventID:    *req.EventID,
		TicketType: req.TicketType,
		Price:      *req.Price,
	}))
}

// CancelEvent handles POST /api/cancel_event. Only the Admin account may run
// the procedure; for User callers the database refuses it.
//
// @Summary      Cancel an event
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      cancelEventRequest  true  "Event"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/cancel_event [post]
func (h *BookingHandler) CancelEvent(c echo.Context) error {
	var req cancelEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return dispatch(c, h.dispatcher, service.CancelEvent(*req.EventID))
}

// AddStall handles POST /api/add_stall.
//
// @Summary      Add a vendor stall
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      addStallRequest  true  "Stall"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/add_stall [post]
func (h *BookingHandler) AddStall(c echo.Context) error {
	var req addStallRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return dispatch(c, h.dispatcher, service.AddStall(ports.AddStallInput{
		StallName: req.StallName,
		Type:      req.Type,
		Rental:    *req.Rental,
		VendorID:  *req.VendorID,
	}))
}

// MyProfile handles POST /api/my_profile.
//
// @Summary      User profile
// @Description  Total spending, ticket history and up to five upcoming events the user has no ticket for.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "User"
// @Success      200   {object}  ports.Profile
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/my_profile [post]
func (h *BookingHandler) MyProfile(c echo.Context) error {
	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return dispatch(c, h.dispatcher, service.MyProfile(*req.UserID))
}
