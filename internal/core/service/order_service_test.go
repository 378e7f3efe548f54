package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shoplite/shoplite-api/internal/core/domain"
	"github.com/shoplite/shoplite-api/internal/core/ports"
)

type stubOrderRepo struct {
	placed []*domain.Order
	byNum  map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byNum: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Place(_ context.Context, userID int64, number string, items []ports.OrderItemInput) (*domain.Order, error) {
	order := &domain.Order{
		ID:     int64(len(r.placed) + 1),
		Number: number,
		UserID: userID,
		Status: domain.OrderStatusPending,
	}
	for _, item := range items {
		order.Items = append(order.Items, &domain.OrderItem{
			ProductID: item.ProductID,
			UnitCents: 1000,
			Quantity:  item.Quantity,
		})
		order.TotalCents += 1000 * item.Quantity
	}
	r.placed = append(r.placed, order)
	r.byNum[number] = order
	return order, nil
}

func (r *stubOrderRepo) GetByNumber(_ context.Context, number string) (*domain.Order, error) {
	if o, ok := r.byNum[number]; ok {
		return o, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0)
	for _, o := range r.placed {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListAll(_ context.Context) ([]*domain.Order, error) {
	return r.placed, nil
}

type stubIdemStore struct {
	seen map[string]string
}

func newStubIdemStore() *stubIdemStore {
	return &stubIdemStore{seen: make(map[string]string)}
}

func (s *stubIdemStore) Lookup(_ context.Context, _ int64, key string) (string, bool, error) {
	number, ok := s.seen[key]
	return number, ok, nil
}

func (s *stubIdemStore) Remember(_ context.Context, _ int64, key, number string) error {
	s.seen[key] = number
	return nil
}

func TestOrderService_Place(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, newStubIdemStore())

	result, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		UserID: 7,
		Items:  []ports.OrderItemInput{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if result.Replayed {
		t.Fatalf("first submission marked as replay")
	}
	if result.Order.Number == "" {
		t.Fatalf("expected generated order number")
	}
	if result.Order.TotalCents != 3000 {
		t.Errorf("total: got %d, want 3000", result.Order.TotalCents)
	}
	if len(repo.placed) != 1 {
		t.Fatalf("expected one placed order, got %d", len(repo.placed))
	}
}

func TestOrderService_Place_Validation(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubIdemStore())

	tests := []struct {
		name  string
		items []ports.OrderItemInput
	}{
		{"no items", nil},
		{"zero quantity", []ports.OrderItemInput{{ProductID: 1, Quantity: 0}}},
		{"negative quantity", []ports.OrderItemInput{{ProductID: 1, Quantity: -1}}},
		{"bad product id", []ports.OrderItemInput{{ProductID: 0, Quantity: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Place(context.Background(), ports.PlaceOrderInput{UserID: 1, Items: tt.items})
			if !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestOrderService_Place_IdempotentReplay(t *testing.T) {
	repo := newStubOrderRepo()
	idem := newStubIdemStore()
	svc := NewOrderService(repo, idem)

	in := ports.PlaceOrderInput{
		UserID:         7,
		Items:          []ports.OrderItemInput{{ProductID: 1, Quantity: 1}},
		IdempotencyKey: "req-123",
	}

	first, err := svc.Place(context.Background(), in)
	if err != nil {
		t.Fatalf("first place: %v", err)
	}

	second, err := svc.Place(context.Background(), in)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !second.Replayed {
		t.Fatalf("expected replay to be flagged")
	}
	if second.Order.Number != first.Order.Number {
		t.Errorf("replay returned a different order")
	}
	if len(repo.placed) != 1 {
		t.Fatalf("replay placed a second order")
	}
}

func TestOrderService_Get_OwnershipHidesOrders(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, newStubIdemStore())

	placed, err := svc.Place(context.Background(), ports.PlaceOrderInput{
		UserID: 7,
		Items:  []ports.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	number := placed.Order.Number

	if _, err := svc.Get(context.Background(), number, 7, domain.RoleCustomer); err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if _, err := svc.Get(context.Background(), number, 8, domain.RoleCustomer); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("non-owner read: expected ErrOrderNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), number, 99, domain.RoleAdmin); err != nil {
		t.Fatalf("admin read: %v", err)
	}
}

func TestOrderService_List_ByRole(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, newStubIdemStore())

	for _, userID := range []int64{1, 1, 2} {
		if _, err := svc.Place(context.Background(), ports.PlaceOrderInput{
			UserID: userID,
			Items:  []ports.OrderItemInput{{ProductID: 1, Quantity: 1}},
		}); err != nil {
			t.Fatalf("place: %v", err)
		}
	}

	own, err := svc.List(context.Background(), 1, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(own) != 2 {
		t.Errorf("customer sees %d orders, want 2", len(own))
	}

	all, err := svc.List(context.Background(), 99, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("admin sees %d orders, want 3", len(all))
	}
}
