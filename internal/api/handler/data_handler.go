package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/venuepass/ticketing-api/internal/core/ports"
	"github.com/venuepass/ticketing-api/internal/core/service"
)

// DataHandler serves the read-only endpoints.
type DataHandler struct {
	dispatcher ports.Dispatcher
	venue      string
}

// NewDataHandler returns a DataHandler whose analytics report lists the
// events held at venue.
func NewDataHandler(dispatcher ports.Dispatcher, venue string) *DataHandler {
	return &DataHandler{dispatcher: dispatcher, venue: venue}
}

// BulkRead handles GET /api/data and any path under it.
//
// @Summary      Read all entity sets
// @Tags         data
// @Produce      json
// @Success      200  {object}  ports.BulkData
// @Failure      500  {object}  errorResponse
// @Router       /api/data [get]
func (h *DataHandler) BulkRead(c echo.Context) error {
	return dispatch(c, h.dispatcher, service.BulkRead())
}

// Analytics handles GET /api/analytics. Admin only.
//
// @Summary      Admin analytics
// @Tags         data
// @Produce      json
// @Success      200  {object}  ports.AnalyticsReport
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/analytics [get]
func (h *DataHandler) Analytics(c echo.Context) error {
	return dispatch(c, h.dispatcher, service.Analytics(h.venue))
}
