package ports

import (
	"context"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

type ProductRepository interface {
	List(ctx context.Context, category string) ([]*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	// AdjustStock applies delta atomically and fails with
	// domain.ErrInsufficientStock if the result would be negative.
	AdjustStock(ctx context.Context, id int64, delta int64) (*domain.Product, error)
}
