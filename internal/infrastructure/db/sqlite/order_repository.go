package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

const orderListLimit = 100

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Place decrements stock and inserts the order with its item snapshots in a
// single transaction. Stock decrements are conditional UPDATEs, so two
// concurrent orders can never drive stock negative.
func (r *OrderRepository) Place(ctx context.Context, userID int64, number string, items []ports.OrderItemInput) (*domain.Order, error) {
	order := &domain.Order{
		Number:    number,
		UserID:    userID,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	err := r.store.DB().RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		ids := make([]int64, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ProductID)
		}

		products := make([]*domain.Product, 0, len(ids))
		if err := tx.NewSelect().Model(&products).Where("p.id IN (?)", bun.In(ids)).Scan(ctx); err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		byID := make(map[int64]*domain.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		for _, item := range items {
			product, ok := byID[item.ProductID]
			if !ok {
				return domain.Validationf("product %d does not exist", item.ProductID)
			}

			res, err := tx.NewUpdate().
				Model((*domain.Product)(nil)).
				Set("stock = stock - ?", item.Quantity).
				Set("updated_at = ?", time.Now().UTC()).
				Where("id = ?", item.ProductID).
				Where("stock >= ?", item.Quantity).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, product.Name)
			}

			order.Items = append(order.Items, &domain.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				UnitCents: product.PriceCents,
				Quantity:  item.Quantity,
			})
			order.TotalCents += product.PriceCents * item.Quantity
		}

		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		for _, item := range order.Items {
			item.OrderID = order.ID
		}
		if _, err := tx.NewInsert().Model(&order.Items).Exec(ctx); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	order := new(domain.Order)
	err := r.store.DB().NewSelect().Model(order).
		Relation("Items").
		Where("o.number = ?", number).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)
	err := r.store.DB().NewSelect().Model(&orders).
		Relation("Items").
		Where("o.user_id = ?", userID).
		Order("o.id DESC").
		Limit(orderListLimit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)
	err := r.store.DB().NewSelect().Model(&orders).
		Relation("Items").
		Order("o.id DESC").
		Limit(orderListLimit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
