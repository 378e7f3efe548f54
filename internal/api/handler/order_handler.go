package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite-api/internal/api/metrics"
	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity"   validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

// Create handles POST /orders. A repeated submission with the same
// Idempotency-Key returns the original order with 200 instead of placing a
// new one.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string              false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createOrderRequest  true   "Order lines"
// @Success      201              {object}  orderResponse
// @Success      200              {object}  orderResponse  "Idempotent replay"
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	result, err := h.service.Place(c.Request().Context(), ports.PlaceOrderInput{
		UserID:         userID,
		Items:          items,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		metrics.OrdersPlacedTotal.WithLabelValues("rejected").Inc()
		return err
	}

	if result.Replayed {
		metrics.OrdersPlacedTotal.WithLabelValues("replayed").Inc()
		return c.JSON(http.StatusOK, orderResponse{Message: "order already placed", Order: result.Order})
	}

	metrics.OrdersPlacedTotal.WithLabelValues("placed").Inc()
	metrics.OrderValueCents.Observe(float64(result.Order.TotalCents))
	return c.JSON(http.StatusCreated, orderResponse{Message: "order placed", Order: result.Order})
}

// List handles GET /orders: all orders for admins, own orders otherwise.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.List(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/:number. Customers can only read their own orders;
// non-owners get the same 404 as a missing order.
//
// @Summary      Get an order by number
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        number  path      string  true  "Order number"
// @Success      200     {object}  domain.Order
// @Failure      404     {object}  errorResponse
// @Router       /orders/{number} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), c.Param("number"), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
