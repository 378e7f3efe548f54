package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite-api/internal/api/metrics"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Stock       int64  `json:"stock"       validate:"gte=0"`
}

type adjustStockRequest struct {
	// Delta is the signed adjustment; negative values remove stock.
	Delta int64 `json:"delta" validate:"required"`
}

func (r productRequest) toInput() ports.ProductInput {
	return ports.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		Category:    r.Category,
		Image:       r.Image,
		Stock:       r.Stock,
	}
}

func productID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return id, nil
}

// List handles GET /products.
//
// @Summary      List catalog products
// @Tags         products
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {array}   domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products (admin).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id (admin).
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id (admin).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Product id"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AdjustStock handles POST /products/:id/inventory (admin).
//
// @Summary      Adjust product inventory
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Product id"
// @Param        body  body      adjustStockRequest  true  "Signed stock delta"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id}/inventory [post]
func (h *ProductHandler) AdjustStock(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	var req adjustStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.AdjustStock(c.Request().Context(), id, req.Delta)
	if err != nil {
		return err
	}

	direction := "up"
	if req.Delta < 0 {
		direction = "down"
	}
	metrics.StockAdjustmentsTotal.WithLabelValues(direction).Inc()

	return c.JSON(http.StatusOK, product)
}
