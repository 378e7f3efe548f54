package domain

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order is a placed order. Item rows snapshot the product name and unit price
// at purchase time so later catalog edits do not rewrite history.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID         int64        `bun:"id,pk,autoincrement" json:"id"`
	Number     string       `bun:"number,notnull,unique" json:"number"`
	UserID     int64        `bun:"user_id,notnull" json:"user_id"`
	Status     string       `bun:"status,notnull" json:"status"`
	TotalCents int64        `bun:"total_cents,notnull" json:"total_cents"`
	Items      []*OrderItem `bun:"rel:has-many,join:id=order_id" json:"items"`
	CreatedAt  time.Time    `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

type OrderItem struct {
	bun.BaseModel `bun:"table:order_items,alias:oi"`

	ID        int64  `bun:"id,pk,autoincrement" json:"-"`
	OrderID   int64  `bun:"order_id,notnull" json:"-"`
	ProductID int64  `bun:"product_id,notnull" json:"product_id"`
	Name      string `bun:"name,notnull" json:"name"`
	UnitCents int64  `bun:"unit_cents,notnull" json:"unit_cents"`
	Quantity  int64  `bun:"quantity,notnull" json:"quantity"`
}
