package ports

import (
	"context"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

type OrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	UserID int64
	Items  []OrderItemInput
	// IdempotencyKey, when non-empty, makes repeated submissions return the
	// originally placed order instead of charging stock again.
	IdempotencyKey string
}

// PlaceOrderResult reports the placed (or replayed) order.
type PlaceOrderResult struct {
	Order *domain.Order
	// Replayed is true when the idempotency key matched an earlier
	// submission and no new order was created.
	Replayed bool
}

type OrderService interface {
	Place(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error)
	// Get enforces ownership: customers may only read their own orders.
	Get(ctx context.Context, number string, requesterID int64, requesterRole string) (*domain.Order, error)
	// List returns all orders for admins and the requester's own otherwise.
	List(ctx context.Context, requesterID int64, requesterRole string) ([]*domain.Order, error)
}

// IdempotencyStore remembers which order an idempotency key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, userID int64, key string) (orderNumber string, found bool, err error)
	Remember(ctx context.Context, userID int64, key, orderNumber string) error
}
