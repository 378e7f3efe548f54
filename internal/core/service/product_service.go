package service

import (
	"context"
	"time"

	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

// ProductService implements catalog management. Reads are public; writes are
// admin-gated at the HTTP layer.
type ProductService struct {
	repo ports.ProductRepository
}

func NewProductService(repo ports.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.repo.List(ctx, category)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Category:    in.Category,
		Image:       in.Image,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *ProductService) Update(ctx context.Context, id int64, in ports.ProductInput) (*domain.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = in.Name
	current.Description = in.Description
	current.PriceCents = in.PriceCents
	current.Category = in.Category
	current.Image = in.Image
	current.Stock = in.Stock
	current.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, current)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) AdjustStock(ctx context.Context, id int64, delta int64) (*domain.Product, error) {
	if delta == 0 {
		return nil, domain.Validationf("delta must be non-zero")
	}
	return s.repo.AdjustStock(ctx, id, delta)
}

func validateProductInput(in ports.ProductInput) error {
	if in.Name == "" {
		return domain.Validationf("product name is required")
	}
	if in.PriceCents <= 0 {
		return domain.Validationf("price must be positive")
	}
	if in.Stock < 0 {
		return domain.Validationf("stock cannot be negative")
	}
	return nil
}
