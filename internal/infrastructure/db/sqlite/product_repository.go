package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shoplite/shoplite-api/internal/core/domain"
)

const productListLimit = 200

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) List(ctx context.Context, category string) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0)
	q := r.store.DB().NewSelect().Model(&products).Order("p.id ASC").Limit(productListLimit)
	if category != "" {
		q = q.Where("p.category = ?", category)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product := new(domain.Product)
	err := r.store.DB().NewSelect().Model(product).Where("p.id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if _, err := r.store.DB().NewInsert().Model(p).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	res, err := r.store.DB().NewUpdate().Model(p).WherePK().Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.DB().NewDelete().Model((*domain.Product)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// AdjustStock applies the delta with a conditional UPDATE so the non-negative
// floor holds under concurrent adjustments; no check-then-act.
func (r *ProductRepository) AdjustStock(ctx context.Context, id int64, delta int64) (*domain.Product, error) {
	res, err := r.store.DB().NewUpdate().
		Model((*domain.Product)(nil)).
		Set("stock = stock + ?", delta).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("stock + ? >= 0", delta).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish a missing product from an adjustment below zero.
		if _, err := r.Get(ctx, id); err != nil {
			return nil, err
		}
		return nil, domain.ErrInsufficientStock
	}
	return r.Get(ctx, id)
}
