package ports

import (
	"context"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

type ProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Category    string
	Image       string
	Stock       int64
}

type ProductService interface {
	List(ctx context.Context, category string) ([]*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	AdjustStock(ctx context.Context, id int64, delta int64) (*domain.Product, error)
}
