package ports

import (
	"context"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

type OrderRepository interface {
	// Place runs the whole placement in one transaction: loads the products,
	// decrements stock with a non-negative floor, and inserts the order with
	// its item snapshots. Any failure rolls the transaction back.
	Place(ctx context.Context, userID int64, number string, items []OrderItemInput) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
}
