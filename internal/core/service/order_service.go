package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

const maxOrderLines = 50

// OrderService places and reads orders. Placement is idempotent when the
// client supplies an Idempotency-Key: replays return the original order
// without touching stock again.
type OrderService struct {
	orders ports.OrderRepository
	idem   ports.IdempotencyStore
}

func NewOrderService(orders ports.OrderRepository, idem ports.IdempotencyStore) *OrderService {
	return &OrderService{orders: orders, idem: idem}
}

func (s *OrderService) Place(ctx context.Context, in ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
	if len(in.Items) == 0 {
		return nil, domain.Validationf("order must contain at least one item")
	}
	if len(in.Items) > maxOrderLines {
		return nil, domain.Validationf("order cannot contain more than %d lines", maxOrderLines)
	}
	for _, item := range in.Items {
		if item.ProductID <= 0 {
			return nil, domain.Validationf("product_id must be positive")
		}
		if item.Quantity <= 0 {
			return nil, domain.Validationf("quantity must be positive")
		}
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		number, found, err := s.idem.Lookup(ctx, in.UserID, in.IdempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("idempotency lookup: %w", err)
		}
		if found {
			order, err := s.orders.GetByNumber(ctx, number)
			if err != nil {
				return nil, err
			}
			return &ports.PlaceOrderResult{Order: order, Replayed: true}, nil
		}
	}

	order, err := s.orders.Place(ctx, in.UserID, uuid.NewString(), in.Items)
	if err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		// Recording after commit leaves a small window where a crashed
		// request is retried as a new order; acceptable here, matching the
		// check-then-mark semantics of the dedup store.
		if err := s.idem.Remember(ctx, in.UserID, in.IdempotencyKey, order.Number); err != nil {
			return nil, fmt.Errorf("idempotency record: %w", err)
		}
	}

	return &ports.PlaceOrderResult{Order: order}, nil
}

func (s *OrderService) Get(ctx context.Context, number string, requesterID int64, requesterRole string) (*domain.Order, error) {
	order, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if requesterRole != domain.RoleAdmin && order.UserID != requesterID {
		// Hide the order's existence from non-owners.
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, requesterID int64, requesterRole string) ([]*domain.Order, error) {
	if requesterRole == domain.RoleAdmin {
		return s.orders.ListAll(ctx)
	}
	return s.orders.ListByUser(ctx, requesterID)
}
