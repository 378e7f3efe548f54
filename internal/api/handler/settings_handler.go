package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite-api/internal/core/ports"
)

type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /settings: the full key/value map, publicly readable so the
// storefront can render itself.
//
// @Summary      Read store settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles PUT /settings (admin): upserts the provided keys, leaving
// the rest untouched.
//
// @Summary      Update store settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]string  true  "Settings to upsert"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var values map[string]string
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Update(c.Request().Context(), values); err != nil {
		return err
	}

	settings, err := h.service.All(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
