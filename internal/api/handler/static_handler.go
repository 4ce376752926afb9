package handler

import (
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// StaticHandler serves the single-page front end.
type StaticHandler struct {
	index string
}

// NewStaticHandler serves dir/index.html.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{index: filepath.Join(dir, "index.html")}
}

// Index writes the page, or 404 when it is missing.
func (h *StaticHandler) Index(c echo.Context) error {
	return c.File(h.index)
}
